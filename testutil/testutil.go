// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/votr/auth"
	"github.com/danielhkuo/votr/cliparse"
	"github.com/danielhkuo/votr/db"
	"github.com/danielhkuo/votr/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema in the
// test's temp dir. The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "votr_test.db")

	conn, err := db.Open(ctx, db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:votr_test.db",
		DatabaseType: db.TypeSQLite,
		IDs:          auth.DefaultGenerator(),
	}
}

// CreateTestQuestion inserts a question and returns its ID and token
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, enabled bool) (questionID, token string) {
	t.Helper()

	gen := auth.DefaultGenerator()
	questionID, _ = gen.NewQuestionID()
	token, _ = gen.NewToken()

	err := db.NewStore(conn).InsertQuestion(context.Background(), models.Question{
		ID:           questionID,
		Text:         text,
		CreationDate: time.Now().UTC(),
		Enabled:      enabled,
		Token:        token,
	})
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID, token
}

// AddTestAnswer adds an answer to a question and returns the answer ID
func AddTestAnswer(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	answerID, _ := auth.DefaultGenerator().NewAnswerID()
	err := db.NewStore(conn).CreateAnswer(context.Background(), models.Answer{
		ID:           answerID,
		Text:         text,
		QuestionID:   questionID,
		CreationDate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return answerID
}

// AddTestVotes records n votes for an answer
func AddTestVotes(t *testing.T, conn *sql.DB, answerID string, n int) {
	t.Helper()

	store := db.NewStore(conn)
	for i := 0; i < n; i++ {
		if _, err := store.CreateVote(context.Background(), answerID, time.Now().UTC()); err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// CountRows runs a COUNT(*) query and returns the result
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status code and the {"error": ...} body
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error %q, got %q", message, resp.Error)
	}
}
