// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import "net/http"

// Kind classifies a caller-facing failure
type Kind int

const (
	KindMissingArgument Kind = iota + 1
	KindInvalidValue
	KindUnauthorized
	KindNotFound
)

// Status maps a kind to its HTTP status code
func (k Kind) Status() int {
	switch k {
	case KindMissingArgument:
		return http.StatusBadRequest
	case KindInvalidValue:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "MissingArgument"
	case KindInvalidValue:
		return "InvalidValue"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Error is a terminal, caller-facing failure with a fixed message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingText  = &Error{KindMissingArgument, "Missing argument: text"}
	ErrMissingToken = &Error{KindMissingArgument, "Missing argument: token"}

	ErrInvalidEnabled = &Error{KindInvalidValue, "Value of argument 'enabled' must be a boolean"}

	ErrQuestionNotFound = &Error{KindNotFound, "The question with the requested ID does not exist"}
	ErrAnswerNotFound   = &Error{KindNotFound, "The answer with the requested ID does not exist"}

	ErrUnauthorizedQuestionUpdate = &Error{KindUnauthorized, "Token is not authorized to update this question"}
	ErrUnauthorizedQuestionDelete = &Error{KindUnauthorized, "Token is not authorized to delete this question"}
	ErrUnauthorizedAnswerCreate   = &Error{KindUnauthorized, "Token is not authorized to create an answer for this question"}
	ErrVotingNotEnabled           = &Error{KindUnauthorized, "Voting is not enabled for this question"}
)
