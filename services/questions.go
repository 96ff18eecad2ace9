// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/votr/auth"
	"github.com/danielhkuo/votr/db"
	"github.com/danielhkuo/votr/metrics"
	"github.com/danielhkuo/votr/models"
)

type QuestionService struct {
	store *db.Store
	ids   auth.Generator
	now   func() time.Time
}

func NewQuestionService(store *db.Store, ids auth.Generator) *QuestionService {
	return &QuestionService{store: store, ids: ids, now: utcNow}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Create validates the request, generates an id and token, and persists
// the question. enabled defaults to false.
func (s *QuestionService) Create(ctx context.Context, req models.CreateQuestionRequest) (models.CreateQuestionResponse, error) {
	if req.Text == nil {
		return models.CreateQuestionResponse{}, ErrMissingText
	}

	enabled := false
	v, err := models.ParseOptionalBool(req.Enabled)
	if err != nil {
		return models.CreateQuestionResponse{}, ErrInvalidEnabled
	}
	if v != nil {
		enabled = *v
	}

	id, err := s.ids.NewQuestionID()
	if err != nil {
		return models.CreateQuestionResponse{}, fmt.Errorf("failed to generate question ID: %w", err)
	}
	token, err := s.ids.NewToken()
	if err != nil {
		return models.CreateQuestionResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	err = s.store.InsertQuestion(ctx, models.Question{
		ID:           id,
		Text:         *req.Text,
		CreationDate: s.now(),
		Enabled:      enabled,
		Token:        token,
	})
	if err != nil {
		return models.CreateQuestionResponse{}, err
	}

	metrics.RecordQuestionCreated()
	slog.Info("question created", "question_id", id, "enabled", enabled)

	return models.CreateQuestionResponse{ID: id, Token: token}, nil
}

// Get returns the public view of a question with per-answer vote tallies
func (s *QuestionService) Get(ctx context.Context, id string) (models.QuestionView, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return models.QuestionView{}, err
	}

	answers, err := s.store.ListAnswerTallies(ctx, id)
	if err != nil {
		return models.QuestionView{}, err
	}

	return models.QuestionView{
		ID:           q.ID,
		Text:         q.Text,
		CreationDate: q.CreationDate,
		Enabled:      q.Enabled,
		Answers:      answers,
	}, nil
}

// Update changes only the enabled flag. A request without enabled is a
// successful no-op once the token has been checked.
func (s *QuestionService) Update(ctx context.Context, id string, req models.UpdateQuestionRequest) error {
	if req.Token == nil {
		return ErrMissingToken
	}

	q, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !auth.TokenMatches(q.Token, *req.Token) {
		return ErrUnauthorizedQuestionUpdate
	}

	enabled, err := models.ParseOptionalBool(req.Enabled)
	if err != nil {
		return ErrInvalidEnabled
	}
	if enabled == nil {
		return nil
	}

	if err := s.store.SetQuestionEnabled(ctx, id, *enabled); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	slog.Info("question updated", "question_id", id, "enabled", *enabled)
	return nil
}

// Delete removes the question and everything under it
func (s *QuestionService) Delete(ctx context.Context, id string, req models.DeleteQuestionRequest) error {
	if req.Token == nil {
		return ErrMissingToken
	}

	q, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !auth.TokenMatches(q.Token, *req.Token) {
		return ErrUnauthorizedQuestionDelete
	}

	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	slog.Info("question deleted", "question_id", id)
	return nil
}

func (s *QuestionService) load(ctx context.Context, id string) (models.Question, error) {
	q, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return models.Question{}, ErrQuestionNotFound
	}
	return q, err
}
