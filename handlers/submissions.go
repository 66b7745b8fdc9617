// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/likert-collect/catalog"
	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/middleware"
	"github.com/danielhkuo/likert-collect/models"
	"github.com/danielhkuo/likert-collect/scoring"
	"github.com/danielhkuo/likert-collect/sink"
	"github.com/danielhkuo/likert-collect/submission"
)

// sinkTimeout bounds the one blocking step in the submission flow.
const sinkTimeout = 10 * time.Second

type SubmissionHandler struct {
	cat  *catalog.Catalog
	cfg  cliparse.Config
	sink sink.Sink
}

func NewSubmissionHandler(cat *catalog.Catalog, cfg cliparse.Config, snk sink.Sink) *SubmissionHandler {
	return &SubmissionHandler{cat: cat, cfg: cfg, sink: snk}
}

// Preview handles POST /form/preview?org&exp&sig
// Scores the responses without building or delivering anything, so the form
// can show live means and the gate state while the respondent works.
func (h *SubmissionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveLink(w, r, h.cfg); !ok {
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result := scoring.Score(h.cat, coerceResponses(req.Responses))

	middleware.JSONResponse(w, http.StatusOK, models.PreviewResponse{
		Answered:       result.Answered,
		Threshold:      result.Threshold,
		GatePassed:     result.GatePassed,
		OverallMean:    result.Overall,
		DimensionMeans: dimensionMeans(result),
	})
}

// Submit handles POST /form/submissions?org&exp&sig
// Validates the link, scores, enforces the completion gate, builds the
// immutable submission, and appends its rows to the sink as one batch.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	link, ok := resolveLink(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Respondent == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "respondent is required")
		return
	}

	result := scoring.Score(h.cat, coerceResponses(req.Responses))

	// Hard precondition: no submission is built below the threshold.
	if !result.GatePassed {
		middleware.ReasonResponse(w, http.StatusUnprocessableEntity, "gate_blocked",
			fmt.Sprintf("answered %d of %d required items", result.Answered, result.Threshold))
		return
	}

	sub := submission.Build(link, req.Respondent, req.Period, req.Notes, result.Items, time.Now())
	rows := sub.Rows()

	ctx, cancel := context.WithTimeout(r.Context(), sinkTimeout)
	defer cancel()
	if err := h.sink.AppendRows(ctx, rows); err != nil {
		// The submission stayed in memory; the caller may retry the request.
		slog.Error("sink append failed", "error", err, "submission_id", sub.ID, "org_id_hash", sub.OrgIDHash)
		middleware.ReasonResponse(w, http.StatusBadGateway, "sink_unavailable",
			"submission was built but could not be delivered; retry")
		return
	}

	slog.Info("submission delivered",
		"submission_id", sub.ID,
		"org_id_hash", sub.OrgIDHash,
		"rows", len(rows),
		"answered", result.Answered,
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		SubmissionID:   sub.ID,
		OrgIDHash:      sub.OrgIDHash,
		Timestamp:      sub.Timestamp,
		Answered:       result.Answered,
		OverallMean:    result.Overall,
		DimensionMeans: dimensionMeans(result),
		RowsAppended:   len(rows),
	})
}

func coerceResponses(raw map[string]any) map[string]int {
	out := make(map[string]int, len(raw))
	for id, v := range raw {
		out[id] = scoring.Coerce(v)
	}
	return out
}

func dimensionMeans(result scoring.Result) []models.DimensionMean {
	out := make([]models.DimensionMean, 0, len(result.Dimensions))
	for _, d := range result.Dimensions {
		out = append(out, models.DimensionMean{
			Dimension: d.Dimension,
			Mean:      d.Mean,
			Answered:  d.Answered,
		})
	}
	return out
}
