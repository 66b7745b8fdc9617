// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/likert-collect/linktoken"
	"github.com/danielhkuo/likert-collect/scoring"
)

// NAMarker is written to sink rows for items without a numeric value.
const NAMarker = "N/A"

// Submission is the finalized, immutable record of one respondent's answers,
// built exactly once per finalize action. It exists independently of whether
// delivery to the sink succeeds, so the caller can retry.
type Submission struct {
	ID         string
	Timestamp  string // ISO-8601, seconds precision
	OrgIDHash  string
	OrgName    string
	Respondent string
	Period     string
	Notes      string
	Items      []scoring.ScoredItem
}

// OrgIDHash derives the 8-character grouping key for an organization name:
// the first 4 bytes of SHA-256 over the trimmed, upper-cased name, as
// uppercase hex. Not cryptographic; purely a dedup/grouping key so the sink
// can join rows without using raw names as the key.
func OrgIDHash(orgName string) string {
	norm := strings.ToUpper(strings.TrimSpace(orgName))
	sum := sha256.Sum256([]byte(norm))
	return strings.ToUpper(hex.EncodeToString(sum[:4]))
}

// Build assembles a Submission from a validated link and scored items. The
// organization identity comes only from the ValidatedLink, never from raw
// query input. The item slice is copied; the record never changes afterwards.
func Build(link linktoken.ValidatedLink, respondent, period, notes string, items []scoring.ScoredItem, at time.Time) Submission {
	return Submission{
		ID:         uuid.NewString(),
		Timestamp:  at.Format("2006-01-02T15:04:05"),
		OrgIDHash:  OrgIDHash(link.OrgName),
		OrgName:    link.OrgName,
		Respondent: respondent,
		Period:     period,
		Notes:      notes,
		Items:      append([]scoring.ScoredItem(nil), items...),
	}
}

// Rows renders the fixed sink layout, one row per catalog item:
//
//	timestamp, org_id_hash, respondent, org_name, dimension, item_text, raw, score
//
// Both raw and score are carried (with explicit N/A markers) so the sink
// retains full auditability, never only the derived value.
func (s Submission) Rows() [][]string {
	rows := make([][]string, 0, len(s.Items))
	for _, item := range s.Items {
		rows = append(rows, []string{
			s.Timestamp,
			s.OrgIDHash,
			s.Respondent,
			s.OrgName,
			item.Dimension,
			item.Text,
			cell(item.Raw),
			cell(item.Score),
		})
	}
	return rows
}

func cell(v int) string {
	if v == scoring.NotAnswered {
		return NAMarker
	}
	return strconv.Itoa(v)
}
