// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/likert-collect/catalog"
	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/linktoken"
	"github.com/danielhkuo/likert-collect/middleware"
	"github.com/danielhkuo/likert-collect/models"
	"github.com/danielhkuo/likert-collect/scoring"
)

type FormHandler struct {
	cat *catalog.Catalog
	cfg cliparse.Config
}

func NewFormHandler(cat *catalog.Catalog, cfg cliparse.Config) *FormHandler {
	return &FormHandler{cat: cat, cfg: cfg}
}

// resolveLink validates the capability link on the request. On rejection it
// writes the 403 response with the specific reason and returns ok=false;
// the caller must not continue. This is the only place the org/exp/sig query
// parameters are read - everything downstream sees the ValidatedLink only.
func resolveLink(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (linktoken.ValidatedLink, bool) {
	p, err := linktoken.ParseParams(r.URL.RawQuery)
	if err == nil {
		var link linktoken.ValidatedLink
		link, err = linktoken.Validate(p, time.Now(), []byte(cfg.LinkSecret), cfg.DefaultOrg)
		if err == nil {
			return link, true
		}
	}

	reason := linktoken.ReasonMalformed
	var rej *linktoken.RejectedError
	if errors.As(err, &rej) {
		reason = rej.Reason
	}
	slog.Info("link rejected", "reason", reason, "remote", middleware.GetClientIP(r))
	middleware.ReasonResponse(w, http.StatusForbidden, string(reason), "link rejected")
	return linktoken.ValidatedLink{}, false
}

// GetForm handles GET /form?org&exp&sig
// Resolves the capability link and returns the organization identity plus
// the catalog grouped by dimension. Rejected links get no form state at all.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	link, ok := resolveLink(w, r, h.cfg)
	if !ok {
		return
	}

	dims := make([]models.DimensionItems, 0, len(h.cat.Dimensions()))
	for _, d := range h.cat.Dimensions() {
		dims = append(dims, models.DimensionItems{
			Dimension: d,
			Items:     h.cat.ByDimension(d),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.FormResponse{
		OrgName:    link.OrgName,
		IsDefault:  link.IsDefault,
		TotalItems: h.cat.Len(),
		Threshold:  scoring.Threshold(h.cat.Len()),
		Dimensions: dims,
	})
}
