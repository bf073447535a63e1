package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the root of every *ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuery signals a malformed search parameter (e.g. a non-numeric AUM bound)
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidAction signals an action outside {approved, rejected}
	ErrInvalidAction = errors.New(`invalid action, must be "approved" or "rejected"`)

	ErrClientNotFound         = errors.New("client not found")
	ErrPortfolioNotFound      = errors.New("portfolio not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrAlreadyExists is returned by stores when an explicit identifier is already taken
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError describes why a create-client request was rejected.
// Missing lists required fields that were absent or empty; Reason carries
// a message for fields that were present but malformed.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	if e.Reason != "" {
		return e.Reason
	}
	return ErrValidation.Error()
}

// Unwrap lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
