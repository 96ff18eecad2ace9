// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/votr/models"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the repository for questions, answers and votes. It wraps a
// single *sql.DB handle owned by the caller.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction is committed only if
// fn returns nil; any error (or panic) rolls back every write made through tx.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertQuestion persists a new question row
func (s *Store) InsertQuestion(ctx context.Context, q models.Question) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO question (id, text, creation_date, enabled, token)
		VALUES ($1, $2, $3, $4, $5)
	`, q.ID, q.Text, q.CreationDate, q.Enabled, q.Token)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// GetQuestion loads a question including its token
func (s *Store) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	return getQuestion(ctx, s.db, id)
}

func getQuestion(ctx context.Context, q querier, id string) (models.Question, error) {
	var question models.Question
	err := q.QueryRowContext(ctx, `
		SELECT id, text, creation_date, enabled, token
		FROM question
		WHERE id = $1
	`, id).Scan(&question.ID, &question.Text, &question.CreationDate, &question.Enabled, &question.Token)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return question, nil
}

// CountQuestions returns 1 if the question exists and 0 otherwise
func (s *Store) CountQuestions(ctx context.Context, id string) (int, error) {
	return countRows(ctx, s.db, `SELECT COUNT(*) FROM question WHERE id = $1`, id)
}

// SetQuestionEnabled updates only the enabled column
func (s *Store) SetQuestionEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE question SET enabled = $1 WHERE id = $2
	`, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return requireAffected(res)
}

// DeleteQuestion removes a question with its answers and their votes in
// one transaction.
func (s *Store) DeleteQuestion(ctx context.Context, id string) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM vote
			WHERE answer_id IN (SELECT id FROM answer WHERE question_id = $1)
		`, id)
		if err != nil {
			return fmt.Errorf("failed to delete votes: %w", err)
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM answer WHERE question_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete answers: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
		return requireAffected(res)
	})
}

// CreateAnswer inserts the answer row and links it to its question in one
// transaction. If the question is gone by the time the link is checked the
// insert is rolled back and ErrNotFound is returned.
func (s *Store) CreateAnswer(ctx context.Context, a models.Answer) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO answer (id, text, question_id, creation_date)
			VALUES ($1, $2, $3, $4)
		`, a.ID, a.Text, a.QuestionID, a.CreationDate)
		if err != nil {
			return fmt.Errorf("failed to insert answer: %w", err)
		}

		n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM question WHERE id = $1`, a.QuestionID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetAnswer loads an answer only if it belongs to the given question
func (s *Store) GetAnswer(ctx context.Context, questionID, answerID string) (models.Answer, error) {
	var a models.Answer
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text, question_id, creation_date
		FROM answer
		WHERE id = $1 AND question_id = $2
	`, answerID, questionID).Scan(&a.ID, &a.Text, &a.QuestionID, &a.CreationDate)

	if err == sql.ErrNoRows {
		return models.Answer{}, ErrNotFound
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to query answer: %w", err)
	}
	return a, nil
}

// ListAnswerTallies returns the answers of a question in creation order,
// each with the number of votes recorded against it.
func (s *Store) ListAnswerTallies(ctx context.Context, questionID string) ([]models.AnswerView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.text, COUNT(v.id)
		FROM answer a
		LEFT JOIN vote v ON v.answer_id = a.id
		WHERE a.question_id = $1
		GROUP BY a.id, a.text, a.creation_date
		ORDER BY a.creation_date, a.id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	answers := []models.AnswerView{}
	for rows.Next() {
		var a models.AnswerView
		if err := rows.Scan(&a.ID, &a.Text, &a.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate answers: %w", err)
	}
	return answers, nil
}

// CreateVote inserts a vote row and links it to its answer in one
// transaction, returning the new vote id.
func (s *Store) CreateVote(ctx context.Context, answerID string, at time.Time) (int64, error) {
	var voteID int64
	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO vote (creation_date, answer_id)
			VALUES ($1, $2)
			RETURNING id
		`, at, answerID).Scan(&voteID)
		if err != nil {
			return fmt.Errorf("failed to insert vote: %w", err)
		}

		n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM answer WHERE id = $1`, answerID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return voteID, nil
}

// CountVotes returns the tally for one answer
func (s *Store) CountVotes(ctx context.Context, answerID string) (int, error) {
	return countRows(ctx, s.db, `SELECT COUNT(*) FROM vote WHERE answer_id = $1`, answerID)
}

func countRows(ctx context.Context, q querier, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
