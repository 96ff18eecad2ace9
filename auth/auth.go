// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
)

// Base36 is the default alphabet for IDs and tokens.
const Base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	ErrInvalidLength   = errors.New("length must be positive")
	ErrInvalidAlphabet = errors.New("alphabet must have at least two characters")
)

// IDSpec describes one kind of generated identifier
type IDSpec struct {
	Length   int
	Alphabet string
}

// Validate checks that the spec can produce identifiers
func (s IDSpec) Validate() error {
	if s.Length <= 0 {
		return ErrInvalidLength
	}
	if len(s.Alphabet) < 2 {
		return ErrInvalidAlphabet
	}
	return nil
}

// Matches reports whether v could have been produced by this spec
func (s IDSpec) Matches(v string) bool {
	if len(v) != s.Length {
		return false
	}
	for i := 0; i < len(v); i++ {
		found := false
		for j := 0; j < len(s.Alphabet); j++ {
			if v[i] == s.Alphabet[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GenerateID creates a random string of the given length drawn from alphabet.
// Each character is chosen uniformly with crypto/rand.
func GenerateID(length int, alphabet string) (string, error) {
	spec := IDSpec{Length: length, Alphabet: alphabet}
	if err := spec.Validate(); err != nil {
		return "", err
	}

	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random ID: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// Generator produces question IDs, answer IDs and question tokens,
// each with its own length and alphabet.
type Generator struct {
	QuestionID IDSpec
	AnswerID   IDSpec
	Token      IDSpec
}

// DefaultGenerator returns the stock 8/8/32 base36 configuration
func DefaultGenerator() Generator {
	return Generator{
		QuestionID: IDSpec{Length: 8, Alphabet: Base36},
		AnswerID:   IDSpec{Length: 8, Alphabet: Base36},
		Token:      IDSpec{Length: 32, Alphabet: Base36},
	}
}

// Validate checks every spec in the generator
func (g Generator) Validate() error {
	if err := g.QuestionID.Validate(); err != nil {
		return fmt.Errorf("question id: %w", err)
	}
	if err := g.AnswerID.Validate(); err != nil {
		return fmt.Errorf("answer id: %w", err)
	}
	if err := g.Token.Validate(); err != nil {
		return fmt.Errorf("token: %w", err)
	}
	return nil
}

func (g Generator) NewQuestionID() (string, error) {
	return GenerateID(g.QuestionID.Length, g.QuestionID.Alphabet)
}

func (g Generator) NewAnswerID() (string, error) {
	return GenerateID(g.AnswerID.Length, g.AnswerID.Alphabet)
}

func (g Generator) NewToken() (string, error) {
	return GenerateID(g.Token.Length, g.Token.Alphabet)
}

// TokenMatches compares a stored question token with a caller-supplied one
// in constant time.
func TokenMatches(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}
