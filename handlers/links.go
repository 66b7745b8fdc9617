// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/hmac"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/linktoken"
	"github.com/danielhkuo/likert-collect/middleware"
	"github.com/danielhkuo/likert-collect/models"
)

// defaultLinkTTL applies when the issue request does not name one.
const defaultLinkTTL = 168 * time.Hour

type LinkHandler struct {
	cfg cliparse.Config
}

func NewLinkHandler(cfg cliparse.Config) *LinkHandler {
	return &LinkHandler{cfg: cfg}
}

// IssueLink handles POST /links
// Issues a signed capability link for an organization. Guarded by the
// X-Issuer-Key header; issuing is an operator action, not a respondent one.
func (h *LinkHandler) IssueLink(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("X-Issuer-Key")
	if !hmac.Equal([]byte(key), []byte(h.cfg.IssuerKey)) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Issuer-Key header required")
		return
	}

	var req models.IssueLinkRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OrgName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org_name is required")
		return
	}
	if req.TTLHours < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ttl_hours must be positive")
		return
	}

	ttl := defaultLinkTTL
	if req.TTLHours > 0 {
		ttl = time.Duration(req.TTLHours) * time.Hour
	}
	expiresAt := time.Now().Add(ttl)

	u, err := linktoken.BuildURL(h.cfg.BaseURL+"/form", req.OrgName, expiresAt, []byte(h.cfg.LinkSecret))
	if err != nil {
		slog.Error("failed to build link", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build link")
		return
	}

	slog.Info("link issued", "org_name", req.OrgName, "expires_at", expiresAt.Unix())

	middleware.JSONResponse(w, http.StatusCreated, models.IssueLinkResponse{
		URL:       u,
		OrgName:   req.OrgName,
		ExpiresAt: expiresAt.Unix(),
	})
}
