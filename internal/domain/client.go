package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RiskProfile represents the risk category of a client
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "Conservative"
	RiskProfileModerate     RiskProfile = "Moderate"
	RiskProfileAggressive   RiskProfile = "Aggressive"
)

// KnownRiskProfiles lists the recognized risk profiles in display order
var KnownRiskProfiles = []RiskProfile{
	RiskProfileConservative,
	RiskProfileModerate,
	RiskProfileAggressive,
}

// IsKnown reports whether the risk profile is one of the three fixed categories
func (r RiskProfile) IsKnown() bool {
	switch r {
	case RiskProfileConservative, RiskProfileModerate, RiskProfileAggressive:
		return true
	}
	return false
}

// ClientIDPrefix is the leading character of every client identifier
const ClientIDPrefix = "c"

// Client represents a wealth-management client in the domain layer
type Client struct {
	ID          string
	Name        string
	Phone       string
	AUM         decimal.Decimal // Assets under management, in millions
	Domicile    string
	Segments    []string
	KeyContacts []string
	Description string
	RiskProfile RiskProfile
	CreatedAt   *time.Time // NULL for seed clients
}

// Validate ensures the client adheres to domain rules
// Returns a *ValidationError listing every missing required field
func (c *Client) Validate() error {
	missing := make([]string, 0)
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	if c.AUM.IsZero() {
		missing = append(missing, "aum")
	}
	if strings.TrimSpace(c.Domicile) == "" {
		missing = append(missing, "domicile")
	}
	if strings.TrimSpace(string(c.RiskProfile)) == "" {
		missing = append(missing, "riskProfile")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if c.AUM.IsNegative() {
		return &ValidationError{Reason: "aum must be a non-negative number"}
	}
	// AUM is served as a JSON number, which cannot hold an infinity
	if f, _ := c.AUM.Float64(); math.IsInf(f, 0) {
		return &ValidationError{Reason: "aum is too large"}
	}

	return nil
}

// Clone returns a deep copy so callers never share slices with a store
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	out := *c
	out.Segments = append([]string{}, c.Segments...)
	out.KeyContacts = append([]string{}, c.KeyContacts...)
	if c.CreatedAt != nil {
		createdAt := *c.CreatedAt
		out.CreatedAt = &createdAt
	}
	return &out
}

// HasSegment reports whether the client carries the exact segment tag
func (c *Client) HasSegment(segment string) bool {
	for _, s := range c.Segments {
		if s == segment {
			return true
		}
	}
	return false
}

// ClientIDNumber extracts the numeric suffix of a client identifier.
// Returns false if the identifier is not "c" followed by digits.
func ClientIDNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, ClientIDPrefix) {
		return 0, false
	}
	digits := id[len(ClientIDPrefix):]
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextClientID returns the identifier for a newly created client.
// Logic:
//   - Take the largest numeric suffix among existing identifiers (non-numeric ids are ignored)
//   - Add one and zero-pad to at least 3 digits ("c011", "c1000")
func NextClientID(existing []string) string {
	highest := 0
	for _, id := range existing {
		if n, ok := ClientIDNumber(id); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", ClientIDPrefix, highest+1)
}
