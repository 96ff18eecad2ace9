// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package services implements the question, answer and vote operations.

Each service receives a *db.Store (and, where it mints identifiers, an
auth.Generator) from its constructor:

	store := db.NewStore(conn)
	questions := services.NewQuestionService(store, cfg.IDs)
	answers := services.NewAnswerService(store, cfg.IDs)
	votes := services.NewVoteService(store)

# Authorization

A question's token is returned once by QuestionService.Create. Updating or
deleting the question and adding answers to it require that token. Voting
requires no token but the question must be enabled.

# Errors

Caller-facing failures are *Error values with a Kind:

	MissingArgument → 400
	InvalidValue    → 422
	Unauthorized    → 401
	NotFound        → 404

All validation and authorization happens before any write. Any other error
is a storage failure.
*/
package services
