// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/danielhkuo/votr/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewStore(conn), mock
}

func TestCreateAnswer_CommitsBothSteps(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO answer").
		WithArgs("ans12345", "Yes", "q1234567", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM question`).
		WithArgs("q1234567").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	err := store.CreateAnswer(context.Background(), models.Answer{
		ID:           "ans12345",
		Text:         "Yes",
		QuestionID:   "q1234567",
		CreationDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateAnswer_RollsBackWhenLinkFails(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO answer").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM question`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := store.CreateAnswer(context.Background(), models.Answer{
		ID:         "ans12345",
		Text:       "Yes",
		QuestionID: "q1234567",
	})
	if err == nil {
		t.Fatal("expected error when link step fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateAnswer_RollsBackWhenParentMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO answer").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM question`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := store.CreateAnswer(context.Background(), models.Answer{ID: "a", Text: "t", QuestionID: "gone"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateVote_RollsBackWhenInsertFails(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO vote").
		WithArgs(sqlmock.AnyArg(), "ans12345").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := store.CreateVote(context.Background(), "ans12345", time.Now()); err == nil {
		t.Fatal("expected error when insert fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateVote_ReturnsID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO vote").
		WithArgs(sqlmock.AnyArg(), "ans12345").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM answer`).
		WithArgs("ans12345").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	id, err := store.CreateVote(context.Background(), "ans12345", time.Now())
	if err != nil {
		t.Fatalf("CreateVote: %v", err)
	}
	if id != 42 {
		t.Errorf("expected vote id 42, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteQuestion_RollsBackOnFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vote").
		WithArgs("q1234567").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM answer").
		WithArgs("q1234567").
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	if err := store.DeleteQuestion(context.Background(), "q1234567"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateSchema_UnknownType(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(context.Background(), conn, "oracle"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestCreateSchema_ExecutesAllStatements(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS question").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS answer").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_answer_question_id").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("BIGSERIAL").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_vote_answer_id").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := CreateSchema(context.Background(), conn, TypePostgres); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
