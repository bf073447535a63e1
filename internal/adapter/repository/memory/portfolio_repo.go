package memory

import (
	"context"
	"fmt"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// portfolioRepository implements domain.PortfolioRepository.
// The map is built once in the constructor and never written again, so reads need no lock.
type portfolioRepository struct {
	byClient map[string]*domain.Portfolio
}

// NewPortfolioRepository creates a read-only portfolio lookup from a fixed set of snapshots.
// A later snapshot for the same client replaces an earlier one.
func NewPortfolioRepository(portfolios []*domain.Portfolio) domain.PortfolioRepository {
	byClient := make(map[string]*domain.Portfolio, len(portfolios))
	for _, p := range portfolios {
		byClient[p.ClientID] = p.Clone()
	}
	return &portfolioRepository{byClient: byClient}
}

// GetByClientID retrieves the portfolio snapshot of a client
func (r *portfolioRepository) GetByClientID(ctx context.Context, clientID string) (*domain.Portfolio, error) {
	p, ok := r.byClient[clientID]
	if !ok {
		return nil, fmt.Errorf("portfolio for client %s: %w", clientID, domain.ErrPortfolioNotFound)
	}
	return p.Clone(), nil
}

// Count returns the number of portfolio snapshots
func (r *portfolioRepository) Count(ctx context.Context) (int, error) {
	return len(r.byClient), nil
}
