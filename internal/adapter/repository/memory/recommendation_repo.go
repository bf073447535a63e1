package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// recommendationRepository implements domain.RecommendationRepository
type recommendationRepository struct {
	mu   sync.RWMutex
	recs []*domain.Recommendation
}

// NewRecommendationRepository creates a new in-memory recommendation repository
func NewRecommendationRepository() domain.RecommendationRepository {
	return &recommendationRepository{recs: make([]*domain.Recommendation, 0)}
}

// GetByID retrieves a persisted recommendation by exact ID
func (r *recommendationRepository) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("recommendation %s: %w", id, domain.ErrRecommendationNotFound)
	}
	return r.recs[idx].Clone(), nil
}

// ListByClientID retrieves the persisted recommendations of a client in insertion order
func (r *recommendationRepository) ListByClientID(ctx context.Context, clientID string) ([]*domain.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Recommendation, 0)
	for _, rec := range r.recs {
		if rec.ClientID == clientID {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Create appends a new recommendation
func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(rec.ID) >= 0 {
		return fmt.Errorf("recommendation %s: %w", rec.ID, domain.ErrAlreadyExists)
	}
	r.recs = append(r.recs, rec.Clone())
	return nil
}

// Update replaces a persisted recommendation with the same ID
func (r *recommendationRepository) Update(ctx context.Context, rec *domain.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(rec.ID)
	if idx < 0 {
		return fmt.Errorf("recommendation %s: %w", rec.ID, domain.ErrRecommendationNotFound)
	}
	r.recs[idx] = rec.Clone()
	return nil
}

// Count returns the number of persisted recommendations
func (r *recommendationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recs), nil
}

// indexOf must be called with mu held
func (r *recommendationRepository) indexOf(id string) int {
	for i, rec := range r.recs {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
