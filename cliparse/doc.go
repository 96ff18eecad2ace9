// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - IDs: Length and alphabet of question IDs, answer IDs and tokens
    (default 8, 8 and 32 base36 characters)

# CLI Flags

	-p                     Server port
	-d                     Database URL
	-t                     Database type
	-question-id-length    Question ID length
	-question-id-alphabet  Question ID alphabet
	-answer-id-length      Answer ID length
	-answer-id-alphabet    Answer ID alphabet
	-token-length          Question token length
	-token-alphabet        Question token alphabet

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	QUESTION_ID_LENGTH   → -question-id-length
	QUESTION_ID_ALPHABET → -question-id-alphabet
	ANSWER_ID_LENGTH     → -answer-id-length
	ANSWER_ID_ALPHABET   → -answer-id-alphabet
	TOKEN_LENGTH         → -token-length
	TOKEN_ALPHABET       → -token-alphabet

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, the database type is
unknown, or an identifier spec has a non-positive length or an alphabet
shorter than two characters.
*/
package cliparse
