package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Priority represents how urgently a recommendation should be reviewed
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// RecommendationStatus represents the review state of a recommendation
type RecommendationStatus string

const (
	StatusPending  RecommendationStatus = "pending"
	StatusApproved RecommendationStatus = "approved"
	StatusRejected RecommendationStatus = "rejected"
)

// SyntheticIDPrefix starts every generated recommendation identifier: rec-<clientId>-<n>
const SyntheticIDPrefix = "rec-"

// Recommendation represents an investment recommendation for a client.
// Static recommendations exist at startup; synthetic ones are derived from
// the client's risk profile and only stored once an action is taken.
type Recommendation struct {
	ID              string
	ClientID        string
	Type            string
	Title           string
	Summary         string
	Priority        Priority
	Confidence      int // 0-100
	EstimatedImpact string
	Status          RecommendationStatus
	CreatedAt       time.Time
	ActionDate      *time.Time // NULL until an action is taken
	Notes           *string    // NULL until an action is taken

	DetailedDescription string
	Benefits            []string
	Risks               []string
	ImplementationSteps []string
}

// ParseAction validates a requested action.
// Only "approved" and "rejected" are accepted; anything else is ErrInvalidAction.
func ParseAction(action string) (RecommendationStatus, error) {
	switch RecommendationStatus(action) {
	case StatusApproved, StatusRejected:
		return RecommendationStatus(action), nil
	}
	return "", ErrInvalidAction
}

// ApplyAction records the outcome of a review on the recommendation
func (r *Recommendation) ApplyAction(status RecommendationStatus, notes string, at time.Time) {
	r.Status = status
	actionDate := at
	r.ActionDate = &actionDate
	r.Notes = &notes
}

// Clone returns a deep copy so callers never share state with a store
func (r *Recommendation) Clone() *Recommendation {
	if r == nil {
		return nil
	}
	out := *r
	if r.ActionDate != nil {
		actionDate := *r.ActionDate
		out.ActionDate = &actionDate
	}
	if r.Notes != nil {
		notes := *r.Notes
		out.Notes = &notes
	}
	out.Benefits = cloneStrings(r.Benefits)
	out.Risks = cloneStrings(r.Risks)
	out.ImplementationSteps = cloneStrings(r.ImplementationSteps)
	return &out
}

// SyntheticRecommendationID builds the identifier of the n-th generated recommendation for a client
func SyntheticRecommendationID(clientID string, n int) string {
	return fmt.Sprintf("%s%s-%d", SyntheticIDPrefix, clientID, n)
}

// ParseSyntheticID splits "rec-<clientId>-<n>" into its parts.
// The client identifier may itself contain hyphens: the numeric suffix is
// whatever follows the last hyphen and must be all digits.
func ParseSyntheticID(id string) (clientID string, n int, ok bool) {
	if !strings.HasPrefix(id, SyntheticIDPrefix) {
		return "", 0, false
	}
	rest := id[len(SyntheticIDPrefix):]

	idx := strings.LastIndex(rest, "-")
	if idx <= 0 || idx == len(rest)-1 {
		return "", 0, false
	}

	suffix := rest[idx+1:]
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, false
	}

	return rest[:idx], n, true
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
