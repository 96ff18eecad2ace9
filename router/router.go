// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/votr/cliparse"
	"github.com/danielhkuo/votr/db"
	"github.com/danielhkuo/votr/handlers"
	"github.com/danielhkuo/votr/metrics"
	"github.com/danielhkuo/votr/middleware"
	"github.com/danielhkuo/votr/services"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize services and handlers
	store := db.NewStore(conn)
	questionHandler := handlers.NewQuestionHandler(services.NewQuestionService(store, cfg.IDs))
	answerHandler := handlers.NewAnswerHandler(services.NewAnswerService(store, cfg.IDs))
	voteHandler := handlers.NewVoteHandler(services.NewVoteService(store))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Questions (mutations require the question token in the body)
	mux.HandleFunc("POST /api/questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("PUT /api/questions/{id}", middleware.WithLogging(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /api/questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Answers
	mux.HandleFunc("POST /api/answers/{questionId}", middleware.WithLogging(answerHandler.CreateAnswer))

	// Votes (public)
	mux.HandleFunc("POST /api/votes/{questionId}/{answerId}", middleware.WithLogging(voteHandler.CreateVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("votr API v1"))
	})

	return mux
}
