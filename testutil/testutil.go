// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/likert-collect/catalog"
	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/linktoken"
	"github.com/danielhkuo/likert-collect/models"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       3411,
		SinkType:   models.SinkCSV,
		SinkPath:   "submissions.csv",
		LinkSecret: "test-link-secret",
		IssuerKey:  "test-issuer-key",
		DefaultOrg: "Instituto Wedja de Socionomia",
		BaseURL:    "http://localhost:3411",
	}
}

// LoadTestCatalog loads the embedded catalog, failing the test on error
func LoadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return cat
}

// SignedQuery builds a valid org/exp/sig query string for an organization
func SignedQuery(orgName string, expiresAt time.Time, secret string) string {
	exp := strconv.FormatInt(expiresAt.Unix(), 10)
	q := url.Values{}
	q.Set("org", orgName)
	q.Set("exp", exp)
	q.Set("sig", linktoken.Sign(orgName, exp, []byte(secret)))
	return q.Encode()
}

// FullResponses answers every catalog item with the same value
func FullResponses(cat *catalog.Catalog, value int) map[string]any {
	out := make(map[string]any, cat.Len())
	for _, item := range cat.Items() {
		out[item.ID] = value
	}
	return out
}

// PartialResponses answers the first n catalog items with the same value
func PartialResponses(cat *catalog.Catalog, n, value int) map[string]any {
	out := make(map[string]any, n)
	for i, item := range cat.Items() {
		if i >= n {
			break
		}
		out[item.ID] = value
	}
	return out
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertReason checks the machine-readable reason on an error response
func AssertReason(t *testing.T, w *httptest.ResponseRecorder, reason string) {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Reason != reason {
		t.Errorf("Expected reason %q, got %q. Body: %s", reason, resp.Reason, w.Body.String())
	}
}
