// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/votr/db"
	"github.com/danielhkuo/votr/metrics"
)

type VoteService struct {
	store *db.Store
	now   func() time.Time
}

func NewVoteService(store *db.Store) *VoteService {
	return &VoteService{store: store, now: utcNow}
}

// Create records one vote for an answer of an enabled question
func (s *VoteService) Create(ctx context.Context, questionID, answerID string) error {
	n, err := s.store.CountQuestions(ctx, questionID)
	if err != nil {
		return err
	}
	if n < 1 {
		metrics.RecordVoteRejected(metrics.ReasonNotFound)
		return ErrQuestionNotFound
	}

	// Answer must belong to this question
	answer, err := s.store.GetAnswer(ctx, questionID, answerID)
	if errors.Is(err, db.ErrNotFound) {
		metrics.RecordVoteRejected(metrics.ReasonNotFound)
		return ErrAnswerNotFound
	}
	if err != nil {
		return err
	}

	parent, err := s.store.GetQuestion(ctx, answer.QuestionID)
	if errors.Is(err, db.ErrNotFound) {
		metrics.RecordVoteRejected(metrics.ReasonNotFound)
		return ErrQuestionNotFound
	}
	if err != nil {
		return err
	}

	if !parent.Enabled {
		metrics.RecordVoteRejected(metrics.ReasonNotEnabled)
		return ErrVotingNotEnabled
	}

	voteID, err := s.store.CreateVote(ctx, answer.ID, s.now())
	if errors.Is(err, db.ErrNotFound) {
		metrics.RecordVoteRejected(metrics.ReasonNotFound)
		return ErrAnswerNotFound
	}
	if err != nil {
		return err
	}

	metrics.RecordVote()
	slog.Info("vote recorded", "question_id", questionID, "answer_id", answerID, "vote_id", voteID)
	return nil
}

// Count returns the number of votes recorded for an answer
func (s *VoteService) Count(ctx context.Context, answerID string) (int, error) {
	return s.store.CountVotes(ctx, answerID)
}
