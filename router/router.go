// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/likert-collect/catalog"
	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/handlers"
	"github.com/danielhkuo/likert-collect/middleware"
	"github.com/danielhkuo/likert-collect/sink"
)

func NewRouter(cat *catalog.Catalog, snk sink.Sink, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	formHandler := handlers.NewFormHandler(cat, cfg)
	submissionHandler := handlers.NewSubmissionHandler(cat, cfg, snk)
	linkHandler := handlers.NewLinkHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Respondent operations (capability-link guarded)
	mux.HandleFunc("GET /form", middleware.WithLogging(formHandler.GetForm))
	mux.HandleFunc("POST /form/preview", middleware.WithLogging(submissionHandler.Preview))
	mux.HandleFunc("POST /form/submissions", middleware.WithLogging(submissionHandler.Submit))

	// Operator operations
	mux.HandleFunc("POST /links", middleware.WithLogging(linkHandler.IssueLink))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("likert-collect API v1"))
	})

	return mux
}
