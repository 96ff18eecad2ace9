// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/votr/middleware"
	"github.com/danielhkuo/votr/services"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// CreateVote handles POST /api/votes/{questionId}/{answerId}
func (h *VoteHandler) CreateVote(w http.ResponseWriter, r *http.Request) {
	err := h.votes.Create(r.Context(), r.PathValue("questionId"), r.PathValue("answerId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.NoContent(w)
}
