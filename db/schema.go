// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dbType string) error {
	stmts, err := schemaFor(dbType)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func schemaFor(dbType string) ([]string, error) {
	var voteTable string
	switch dbType {
	case TypeSQLite:
		voteTable = voteTableSQLite
	case TypePostgres:
		voteTable = voteTablePostgres
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	return []string{
		questionTable,
		answerTable,
		`CREATE INDEX IF NOT EXISTS idx_answer_question_id ON answer(question_id)`,
		voteTable,
		`CREATE INDEX IF NOT EXISTS idx_vote_answer_id ON vote(answer_id)`,
	}, nil
}

const questionTable = `
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    creation_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    enabled BOOLEAN NOT NULL DEFAULT FALSE,
    token TEXT NOT NULL
)`

const answerTable = `
CREATE TABLE IF NOT EXISTS answer (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    creation_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Only the vote id column differs between dialects.
const voteTableSQLite = `
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    creation_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    answer_id TEXT NOT NULL REFERENCES answer(id) ON DELETE CASCADE
)`

const voteTablePostgres = `
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    creation_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    answer_id TEXT NOT NULL REFERENCES answer(id) ON DELETE CASCADE
)`
