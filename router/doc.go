// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the votr API.

NewRouter builds the store, services and handlers from one database handle
and returns a configured http.ServeMux:

	mux := router.NewRouter(conn, cfg)

# Endpoints

	GET    /health                               - Liveness check
	GET    /metrics                              - Prometheus metrics
	GET    /                                     - API banner
	POST   /api/questions                        - Create question
	GET    /api/questions/{id}                   - Question with answer tallies
	PUT    /api/questions/{id}                   - Toggle voting (token)
	DELETE /api/questions/{id}                   - Delete question (token)
	POST   /api/answers/{questionId}             - Add answer (token)
	POST   /api/votes/{questionId}/{answerId}    - Cast a vote

Every /api route is wrapped with middleware.WithLogging. CORS and request
metrics are applied around the whole mux in main.
*/
package router
