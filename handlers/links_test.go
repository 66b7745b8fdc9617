// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/likert-collect/linktoken"
	"github.com/danielhkuo/likert-collect/models"
	"github.com/danielhkuo/likert-collect/testutil"
)

func TestIssueLink(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewLinkHandler(cfg)

	body := models.IssueLinkRequest{OrgName: "Acme & Filhos Ltda", TTLHours: 48}
	req := testutil.MakeRequest("POST", "/links", body, map[string]string{"X-Issuer-Key": cfg.IssuerKey})
	w := httptest.NewRecorder()
	h.IssueLink(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.IssueLinkResponse
	testutil.AssertJSON(t, w, &resp)

	// The issued URL must validate with the same secret.
	parsed, err := url.Parse(resp.URL)
	if err != nil {
		t.Fatalf("issued URL does not parse: %v", err)
	}
	p, err := linktoken.ParseParams(parsed.RawQuery)
	if err != nil {
		t.Fatalf("ParseParams() error = %v", err)
	}
	link, err := linktoken.Validate(p, time.Now(), []byte(cfg.LinkSecret), cfg.DefaultOrg)
	if err != nil {
		t.Fatalf("issued link does not validate: %v", err)
	}
	if link.OrgName != "Acme & Filhos Ltda" {
		t.Errorf("OrgName = %q, want the issued organization", link.OrgName)
	}

	// ExpiresAt roughly 48h out.
	wantExp := time.Now().Add(48 * time.Hour).Unix()
	if resp.ExpiresAt < wantExp-60 || resp.ExpiresAt > wantExp+60 {
		t.Errorf("ExpiresAt = %d, want about %d", resp.ExpiresAt, wantExp)
	}
}

func TestIssueLink_Unauthorized(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewLinkHandler(cfg)

	tests := []struct {
		name string
		key  string
	}{
		{"no key", ""},
		{"wrong key", "not-the-issuer-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := models.IssueLinkRequest{OrgName: "Acme"}
			headers := map[string]string{}
			if tt.key != "" {
				headers["X-Issuer-Key"] = tt.key
			}
			req := testutil.MakeRequest("POST", "/links", body, headers)
			w := httptest.NewRecorder()
			h.IssueLink(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestIssueLink_Validation(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewLinkHandler(cfg)
	auth := map[string]string{"X-Issuer-Key": cfg.IssuerKey}

	t.Run("missing org name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/links", models.IssueLinkRequest{}, auth)
		w := httptest.NewRecorder()
		h.IssueLink(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("negative ttl", func(t *testing.T) {
		body := models.IssueLinkRequest{OrgName: "Acme", TTLHours: -1}
		req := testutil.MakeRequest("POST", "/links", body, auth)
		w := httptest.NewRecorder()
		h.IssueLink(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
