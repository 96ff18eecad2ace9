// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the votr API server.

votr is an anonymous polling service. Anyone can create a question and gets
back a secret token; the token is the only credential needed to add
answers, open or close voting, and delete the question. Votes are anonymous
and only accepted while the question is enabled.

# Starting the Server

Configuration comes from flags, the environment, or a .env file in the
working directory:

	DATABASE_URL=votr.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string (required)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - QUESTION_ID_LENGTH, ANSWER_ID_LENGTH, TOKEN_LENGTH and the matching
    *_ALPHABET variables shape generated identifiers (default 8, 8, 32
    characters of [0-9a-z])

# Architecture

  - handlers: HTTP request handlers (questions, answers, votes)
  - services: Validation, authorization and error taxonomy
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors and HTTP instrumentation
  - models: Request/response types
  - auth: Identifier and token generation
  - db: Connection, schema and the question/answer/vote store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
