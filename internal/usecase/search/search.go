package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/shopspring/decimal"
)

// SortField names a client attribute results can be ordered by
type SortField string

const (
	SortByName        SortField = "name"
	SortByAUM         SortField = "aum"
	SortByDomicile    SortField = "domicile"
	SortByRiskProfile SortField = "riskProfile"
)

// SortOrder is ascending unless explicitly "desc"
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// RawQuery carries search parameters as received from the transport layer
type RawQuery struct {
	Text         string
	MinAUM       string
	MaxAUM       string
	Segments     []string
	Domiciles    []string
	RiskProfiles []string
	SortBy       string
	SortOrder    string
}

// Query is a parsed, validated search request
type Query struct {
	Text         string
	MinAUM       *decimal.Decimal
	MaxAUM       *decimal.Decimal
	Segments     []string
	Domiciles    []string
	RiskProfiles []string
	SortBy       SortField
	SortOrder    SortOrder
}

// ParseQuery validates raw parameters.
// Blank AUM bounds impose no constraint; anything else must parse as a number.
// Unknown sort fields fall back to name; any order other than "desc" is ascending.
func ParseQuery(raw RawQuery) (Query, error) {
	q := Query{
		Text:         strings.TrimSpace(raw.Text),
		Segments:     compact(raw.Segments),
		Domiciles:    compact(raw.Domiciles),
		RiskProfiles: compact(raw.RiskProfiles),
		SortBy:       SortByName,
		SortOrder:    SortAsc,
	}

	var err error
	if q.MinAUM, err = parseBound("minAUM", raw.MinAUM); err != nil {
		return Query{}, err
	}
	if q.MaxAUM, err = parseBound("maxAUM", raw.MaxAUM); err != nil {
		return Query{}, err
	}

	switch SortField(raw.SortBy) {
	case SortByAUM, SortByDomicile, SortByRiskProfile:
		q.SortBy = SortField(raw.SortBy)
	}
	if SortOrder(raw.SortOrder) == SortDesc {
		q.SortOrder = SortDesc
	}

	return q, nil
}

// Run filters and orders clients according to the query.
// Logic:
//  1. Text: case-insensitive substring of name, description, domicile, risk profile or any segment
//  2. AUM: inclusive lower and upper bounds
//  3. Segments: ANY requested segment present (OR)
//  4. Domiciles / risk profiles: exact membership
//  5. Stable sort on the requested field
//
// The input slice is never modified; the result is a new slice.
func Run(clients []*domain.Client, q Query) []*domain.Client {
	needle := strings.ToLower(q.Text)

	results := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if needle != "" && !matchesText(c, needle) {
			continue
		}
		if q.MinAUM != nil && c.AUM.LessThan(*q.MinAUM) {
			continue
		}
		if q.MaxAUM != nil && c.AUM.GreaterThan(*q.MaxAUM) {
			continue
		}
		if len(q.Segments) > 0 && !hasAnySegment(c, q.Segments) {
			continue
		}
		if len(q.Domiciles) > 0 && !contains(q.Domiciles, c.Domicile) {
			continue
		}
		if len(q.RiskProfiles) > 0 && !contains(q.RiskProfiles, string(c.RiskProfile)) {
			continue
		}
		results = append(results, c)
	}

	less := lessFunc(q.SortBy)
	if q.SortOrder == SortDesc {
		sort.SliceStable(results, func(i, j int) bool {
			return less(results[j], results[i])
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return less(results[i], results[j])
		})
	}

	return results
}

func lessFunc(field SortField) func(a, b *domain.Client) bool {
	switch field {
	case SortByAUM:
		return func(a, b *domain.Client) bool { return a.AUM.LessThan(b.AUM) }
	case SortByDomicile:
		return func(a, b *domain.Client) bool { return a.Domicile < b.Domicile }
	case SortByRiskProfile:
		return func(a, b *domain.Client) bool { return a.RiskProfile < b.RiskProfile }
	default:
		return func(a, b *domain.Client) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

func matchesText(c *domain.Client, needle string) bool {
	fields := []string{c.Name, c.Description, c.Domicile, string(c.RiskProfile)}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	for _, s := range c.Segments {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func hasAnySegment(c *domain.Client, segments []string) bool {
	for _, s := range segments {
		if c.HasSegment(s) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func parseBound(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q is not a number: %w", name, raw, domain.ErrInvalidQuery)
	}
	return &d, nil
}

// compact drops blank entries so "segments=" does not filter everything out
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
