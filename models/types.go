package models

import "github.com/danielhkuo/likert-collect/catalog"

// Sink type constants
const (
	SinkDB  = "db"
	SinkCSV = "csv"
)

// Request types

// SubmitRequest carries one respondent's answers. Response values are left
// untyped on purpose: anything that is not an integral 1..5 is coerced to
// not-applicable downstream, never rejected.
type SubmitRequest struct {
	Respondent string         `json:"respondent"`
	Period     string         `json:"period"`
	Notes      string         `json:"notes,omitempty"`
	Responses  map[string]any `json:"responses"` // item_id -> 1..5 or "N/A"
}

type IssueLinkRequest struct {
	OrgName  string `json:"org_name"`
	TTLHours int    `json:"ttl_hours,omitempty"` // default 168 (one week)
}

// Response types

type FormResponse struct {
	OrgName    string           `json:"org_name"`
	IsDefault  bool             `json:"is_default"`
	TotalItems int              `json:"total_items"`
	Threshold  int              `json:"threshold"`
	Dimensions []DimensionItems `json:"dimensions"`
}

type DimensionItems struct {
	Dimension string         `json:"dimension"`
	Items     []catalog.Item `json:"items"`
}

type DimensionMean struct {
	Dimension string  `json:"dimension"`
	Mean      float64 `json:"mean"`
	Answered  int     `json:"answered"`
}

type PreviewResponse struct {
	Answered       int             `json:"answered"`
	Threshold      int             `json:"threshold"`
	GatePassed     bool            `json:"gate_passed"`
	OverallMean    float64         `json:"overall_mean"`
	DimensionMeans []DimensionMean `json:"dimension_means"`
}

type SubmitResponse struct {
	SubmissionID   string          `json:"submission_id"`
	OrgIDHash      string          `json:"org_id_hash"`
	Timestamp      string          `json:"timestamp"`
	Answered       int             `json:"answered"`
	OverallMean    float64         `json:"overall_mean"`
	DimensionMeans []DimensionMean `json:"dimension_means"`
	RowsAppended   int             `json:"rows_appended"`
}

type IssueLinkResponse struct {
	URL       string `json:"url"`
	OrgName   string `json:"org_name"`
	ExpiresAt int64  `json:"expires_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
