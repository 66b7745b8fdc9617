// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

	mux.HandleFunc("GET /form", middleware.WithLogging(handler.GetForm))

Logs request start and completion with method, path, and duration via slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ReasonResponse(w, http.StatusForbidden, "expired", "link rejected")

ReasonResponse adds the machine-readable reason codes the API promises for
link rejections, gate failures, and sink failures.

# CORS

Applied once around the whole mux in main; allows the static form frontend
to call the API from another origin.
*/
package middleware
