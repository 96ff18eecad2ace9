// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and token generation utilities.

# Identifiers

Question IDs, answer IDs and question tokens are random fixed-length
strings. Each kind has its own length and alphabet:

	gen := auth.DefaultGenerator()
	id, err := gen.NewQuestionID()  // 8 base36 characters
	token, err := gen.NewToken()    // 32 base36 characters

Characters are drawn uniformly using crypto/rand.

# Tokens

A question token is returned once, at creation time, and is the only
credential that can update or delete the question or add answers to it.
Comparisons use constant time:

	if !auth.TokenMatches(stored, provided) {
		// reject
	}
*/
package auth
