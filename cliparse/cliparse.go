package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danielhkuo/votr/auth"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	IDs          auth.Generator
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("votr", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Identifier shapes
	fs.IntVar(&cfg.IDs.QuestionID.Length, "question-id-length", 0, "Question ID length")
	fs.StringVar(&cfg.IDs.QuestionID.Alphabet, "question-id-alphabet", "", "Question ID alphabet")
	fs.IntVar(&cfg.IDs.AnswerID.Length, "answer-id-length", 0, "Answer ID length")
	fs.StringVar(&cfg.IDs.AnswerID.Alphabet, "answer-id-alphabet", "", "Answer ID alphabet")
	fs.IntVar(&cfg.IDs.Token.Length, "token-length", 0, "Question token length")
	fs.StringVar(&cfg.IDs.Token.Alphabet, "token-alphabet", "", "Question token alphabet")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	defaults := auth.DefaultGenerator()
	if err := fillSpec(&cfg.IDs.QuestionID, defaults.QuestionID, "QUESTION_ID"); err != nil {
		return Config{}, err
	}
	if err := fillSpec(&cfg.IDs.AnswerID, defaults.AnswerID, "ANSWER_ID"); err != nil {
		return Config{}, err
	}
	if err := fillSpec(&cfg.IDs.Token, defaults.Token, "TOKEN"); err != nil {
		return Config{}, err
	}
	if err := cfg.IDs.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// fillSpec applies <prefix>_LENGTH and <prefix>_ALPHABET, then defaults
func fillSpec(spec *auth.IDSpec, def auth.IDSpec, prefix string) error {
	if spec.Length == 0 {
		if s := os.Getenv(prefix + "_LENGTH"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("invalid %s_LENGTH env variable", prefix)
			}
			spec.Length = n
		} else {
			spec.Length = def.Length
		}
	}
	if spec.Alphabet == "" {
		spec.Alphabet = os.Getenv(prefix + "_ALPHABET")
		if spec.Alphabet == "" {
			spec.Alphabet = def.Alphabet
		}
	}
	return nil
}
