// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: text, enabled
  - UpdateQuestionRequest: token, enabled
  - DeleteQuestionRequest: token
  - CreateAnswerRequest: token, text

String fields are pointers so a missing argument is distinguishable from an
empty one. The enabled field is decoded with ParseOptionalBool, which accepts
only the JSON literals true and false.

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: id, token
  - CreateAnswerResponse: id
  - QuestionView: id, text, creationDate, enabled, answers
  - AnswerView: id, text, votes
  - ErrorResponse: error

# Domain Types

Rows as stored:

  - Question: poll prompt, enabled flag and owner token
  - Answer: option under a question
  - Vote: anonymous tally unit under an answer
*/
package models
