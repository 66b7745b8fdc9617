// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/danielhkuo/likert-collect/catalog"
)

// NotAnswered marks an item with no usable numeric response. Valid responses
// are 1..5, so 0 is unambiguous.
const NotAnswered = 0

// ScoredItem pairs an item's raw response with its adjusted score. Both are
// kept so the sink retains full auditability.
type ScoredItem struct {
	ItemID    string
	Dimension string
	Text      string
	Raw       int // 1..5, or NotAnswered
	Score     int // 1..5 after reverse adjustment, or NotAnswered
}

// DimensionSummary is the mean adjusted score of one dimension's answered
// items. Dimensions with no numeric answers get no summary at all.
type DimensionSummary struct {
	Dimension string
	Mean      float64
	Answered  int
}

// Result is the full deterministic output of scoring one response set.
type Result struct {
	Items      []ScoredItem       // one per catalog item, catalog order
	Dimensions []DimensionSummary // ascending by mean; catalog order on ties
	Overall    float64            // mean over all numeric scores; 0 when Answered is 0
	Answered   int
	Threshold  int
	GatePassed bool
}

// Coerce maps an arbitrary decoded JSON value to a raw response. Anything
// outside an integral 1..5 degrades to NotAnswered rather than erroring.
func Coerce(v any) int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		if float64(i) == n && i >= 1 && i <= 5 {
			return i
		}
	case int:
		if n >= 1 && n <= 5 {
			return n
		}
	}
	return NotAnswered
}

// Adjust applies the reverse transform to a raw value. The transform is an
// involution: 6-(6-v) == v.
func Adjust(raw int, reverse bool) int {
	if raw == NotAnswered {
		return NotAnswered
	}
	if reverse {
		return 6 - raw
	}
	return raw
}

// Threshold is the completion gate: at least half the catalog, rounded up.
func Threshold(totalItems int) int {
	return (totalItems + 1) / 2
}

// Score computes adjusted per-item scores, per-dimension means, the overall
// mean, and the completion gate for one respondent. Items absent from
// responses count as NotAnswered; out-of-range values are coerced, never
// rejected. Pure function, safe for concurrent use.
func Score(cat *catalog.Catalog, responses map[string]int) Result {
	items := cat.Items()
	res := Result{
		Items:     make([]ScoredItem, 0, len(items)),
		Threshold: Threshold(len(items)),
	}

	type agg struct {
		sum float64
		n   int
	}
	byDim := make(map[string]*agg)
	var overallSum float64

	for _, item := range items {
		raw := responses[item.ID]
		if raw < 1 || raw > 5 {
			raw = NotAnswered
		}
		score := Adjust(raw, item.Reverse)
		res.Items = append(res.Items, ScoredItem{
			ItemID:    item.ID,
			Dimension: item.Dimension,
			Text:      item.Text,
			Raw:       raw,
			Score:     score,
		})
		if score == NotAnswered {
			continue
		}
		res.Answered++
		overallSum += float64(score)
		a := byDim[item.Dimension]
		if a == nil {
			a = &agg{}
			byDim[item.Dimension] = a
		}
		a.sum += float64(score)
		a.n++
	}

	if res.Answered > 0 {
		res.Overall = overallSum / float64(res.Answered)
	}

	for _, dim := range cat.Dimensions() {
		a := byDim[dim]
		if a == nil {
			continue // no numeric answers; omitted, not rendered as zero
		}
		res.Dimensions = append(res.Dimensions, DimensionSummary{
			Dimension: dim,
			Mean:      a.sum / float64(a.n),
			Answered:  a.n,
		})
	}
	// Ranked ascending; stable sort keeps catalog order between equal means.
	sort.SliceStable(res.Dimensions, func(i, j int) bool {
		return res.Dimensions[i].Mean < res.Dimensions[j].Mean
	})

	res.GatePassed = res.Answered >= res.Threshold
	return res
}
