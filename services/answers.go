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

type AnswerService struct {
	store *db.Store
	ids   auth.Generator
	now   func() time.Time
}

func NewAnswerService(store *db.Store, ids auth.Generator) *AnswerService {
	return &AnswerService{store: store, ids: ids, now: utcNow}
}

// Create adds an answer under a question. The caller must hold the
// question's token.
func (s *AnswerService) Create(ctx context.Context, questionID string, req models.CreateAnswerRequest) (models.CreateAnswerResponse, error) {
	if req.Text == nil {
		return models.CreateAnswerResponse{}, ErrMissingText
	}
	if req.Token == nil {
		return models.CreateAnswerResponse{}, ErrMissingToken
	}

	q, err := s.store.GetQuestion(ctx, questionID)
	if errors.Is(err, db.ErrNotFound) {
		return models.CreateAnswerResponse{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.CreateAnswerResponse{}, err
	}

	if !auth.TokenMatches(q.Token, *req.Token) {
		return models.CreateAnswerResponse{}, ErrUnauthorizedAnswerCreate
	}

	answerID, err := s.ids.NewAnswerID()
	if err != nil {
		return models.CreateAnswerResponse{}, fmt.Errorf("failed to generate answer ID: %w", err)
	}

	err = s.store.CreateAnswer(ctx, models.Answer{
		ID:           answerID,
		Text:         *req.Text,
		QuestionID:   questionID,
		CreationDate: s.now(),
	})
	if errors.Is(err, db.ErrNotFound) {
		// question deleted between lookup and insert
		return models.CreateAnswerResponse{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.CreateAnswerResponse{}, err
	}

	metrics.RecordAnswerCreated()
	slog.Info("answer created", "question_id", questionID, "answer_id", answerID)

	return models.CreateAnswerResponse{ID: answerID}, nil
}
