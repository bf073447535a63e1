package domain

import (
	"context"
)

// ClientRepository defines the interface for the client store
type ClientRepository interface {
	// GetByID retrieves a client by its ID
	// Returns ErrClientNotFound if no client has that ID
	GetByID(ctx context.Context, id string) (*Client, error)

	// List retrieves all clients in insertion order
	List(ctx context.Context) ([]*Client, error)

	// Create appends a new client
	// If client.ID is empty the store assigns the next identifier (see NextClientID)
	// and writes it back into client.ID
	Create(ctx context.Context, client *Client) error

	// Delete removes a client by its ID and returns the removed record
	// Returns ErrClientNotFound if no client has that ID
	Delete(ctx context.Context, id string) (*Client, error)
}

// PortfolioRepository defines the interface for the read-only portfolio lookup
type PortfolioRepository interface {
	// GetByClientID retrieves the portfolio snapshot of a client
	// Returns ErrPortfolioNotFound if none exists
	GetByClientID(ctx context.Context, clientID string) (*Portfolio, error)

	// Count returns the number of portfolio snapshots
	Count(ctx context.Context) (int, error)
}

// RecommendationRepository defines the interface for persisted recommendations
type RecommendationRepository interface {
	// GetByID retrieves a persisted recommendation by exact ID
	// Returns ErrRecommendationNotFound if none exists
	GetByID(ctx context.Context, id string) (*Recommendation, error)

	// ListByClientID retrieves the persisted recommendations of a client in insertion order
	ListByClientID(ctx context.Context, clientID string) ([]*Recommendation, error)

	// Create appends a new recommendation
	// Returns ErrAlreadyExists if the ID is already persisted
	Create(ctx context.Context, rec *Recommendation) error

	// Update replaces a persisted recommendation with the same ID
	// Returns ErrRecommendationNotFound if none exists
	Update(ctx context.Context, rec *Recommendation) error

	// Count returns the number of persisted recommendations
	Count(ctx context.Context) (int, error)
}
