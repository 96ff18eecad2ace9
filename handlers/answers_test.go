// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/votr/models"
	"github.com/danielhkuo/votr/services"
	"github.com/danielhkuo/votr/testutil"
)

func TestCreateAnswer(t *testing.T) {
	h := setupHandlers(t)
	questionID, token := testutil.CreateTestQuestion(t, h.conn, "Lunch?", false)

	tests := []struct {
		name           string
		questionID     string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing text",
			questionID:     questionID,
			requestBody:    map[string]interface{}{"token": token},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrMissingText.Message,
		},
		{
			name:           "missing text and token",
			questionID:     questionID,
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrMissingText.Message,
		},
		{
			name:           "missing token",
			questionID:     questionID,
			requestBody:    map[string]interface{}{"text": "Pizza"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrMissingToken.Message,
		},
		{
			name:           "question not found",
			questionID:     "nope1234",
			requestBody:    map[string]interface{}{"text": "Pizza", "token": token},
			expectedStatus: http.StatusNotFound,
			expectedError:  services.ErrQuestionNotFound.Message,
		},
		{
			name:           "wrong token",
			questionID:     questionID,
			requestBody:    map[string]interface{}{"text": "Pizza", "token": "wrong"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  services.ErrUnauthorizedAnswerCreate.Message,
		},
		{
			name:           "invalid JSON",
			questionID:     questionID,
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/answers/"+tt.questionID, tt.requestBody, nil)
			req.SetPathValue("questionId", tt.questionID)
			w := httptest.NewRecorder()

			h.answers.CreateAnswer(w, req)

			testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
		})
	}

	if n := testutil.CountRows(t, h.conn, "SELECT COUNT(*) FROM answer"); n != 0 {
		t.Fatalf("Rejected requests must not create answers, got %d", n)
	}

	t.Run("success on disabled question", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/answers/"+questionID,
			map[string]interface{}{"text": "Pizza", "token": token}, nil)
		req.SetPathValue("questionId", questionID)
		w := httptest.NewRecorder()

		h.answers.CreateAnswer(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateAnswerResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.ID) != 8 {
			t.Errorf("Expected 8 char answer id, got %q", resp.ID)
		}

		var text, parent string
		err := h.conn.QueryRow("SELECT text, question_id FROM answer WHERE id = $1", resp.ID).Scan(&text, &parent)
		if err != nil {
			t.Fatalf("Failed to query answer: %v", err)
		}
		if text != "Pizza" || parent != questionID {
			t.Errorf("Expected answer (Pizza, %s), got (%s, %s)", questionID, text, parent)
		}
	})
}
