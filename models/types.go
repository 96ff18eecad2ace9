// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotBoolean = errors.New("value is not a boolean")

// Request types

// Text and Token are pointers so an omitted field can be told apart from an
// empty one. Enabled is kept raw so that only a JSON boolean is accepted.
type CreateQuestionRequest struct {
	Text    *string         `json:"text"`
	Enabled json.RawMessage `json:"enabled"`
}

type UpdateQuestionRequest struct {
	Token   *string         `json:"token"`
	Enabled json.RawMessage `json:"enabled"`
}

type DeleteQuestionRequest struct {
	Token *string `json:"token"`
}

type CreateAnswerRequest struct {
	Token *string `json:"token"`
	Text  *string `json:"text"`
}

// Response types

type CreateQuestionResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type CreateAnswerResponse struct {
	ID string `json:"id"`
}

// QuestionView is the public form of a question: no token, answers
// with their vote tallies in creation order.
type QuestionView struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	CreationDate time.Time    `json:"creationDate"`
	Enabled      bool         `json:"enabled"`
	Answers      []AnswerView `json:"answers"`
}

type AnswerView struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Domain types

type Question struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	CreationDate time.Time `json:"creationDate"`
	Enabled      bool      `json:"enabled"`
	Token        string    `json:"-"` // Never expose in JSON
}

type Answer struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	QuestionID   string    `json:"questionId"`
	CreationDate time.Time `json:"creationDate"`
}

type Vote struct {
	ID           int64     `json:"id"`
	CreationDate time.Time `json:"creationDate"`
	AnswerID     string    `json:"answerId"`
}

// ParseOptionalBool decodes a raw JSON field that, when present, must be a
// literal true or false. Strings such as "true" and null are rejected.
// A nil result means the field was omitted.
func ParseOptionalBool(raw json.RawMessage) (*bool, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var v bool
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		v = true
	case "false":
		v = false
	default:
		return nil, ErrNotBoolean
	}
	return &v, nil
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
