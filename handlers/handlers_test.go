// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/votr/db"
	"github.com/danielhkuo/votr/services"
	"github.com/danielhkuo/votr/testutil"
)

type testHandlers struct {
	conn      *sql.DB
	questions *QuestionHandler
	answers   *AnswerHandler
	votes     *VoteHandler
}

// setupHandlers wires all handlers to a fresh test database
func setupHandlers(t *testing.T) *testHandlers {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := db.NewStore(conn)

	return &testHandlers{
		conn:      conn,
		questions: NewQuestionHandler(services.NewQuestionService(store, cfg.IDs)),
		answers:   NewAnswerHandler(services.NewAnswerService(store, cfg.IDs)),
		votes:     NewVoteHandler(services.NewVoteService(store)),
	}
}
