// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the votr API.

Handlers are thin: they decode the JSON body, read path values, call the
matching service and translate the result into a response.

  - QuestionHandler: create, read, toggle and delete questions
  - AnswerHandler: add answers to a question
  - VoteHandler: record votes

Services return *services.Error values whose Kind selects the status code;
the body is always {"error": "<message>"}. Any other error is logged and
answered with 500 "Database error".

Bodies that are not valid JSON are rejected with 400 "Invalid JSON". An
empty body is treated as {}.
*/
package handlers
