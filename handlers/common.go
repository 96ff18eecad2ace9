// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votr/middleware"
	"github.com/danielhkuo/votr/services"
)

// writeServiceError maps a service failure to its status and message.
// Anything that is not a *services.Error is treated as a storage failure.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		middleware.ErrorResponse(w, se.Kind.Status(), se.Message)
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
