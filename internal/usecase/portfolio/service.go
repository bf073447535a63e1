package portfolio

import (
	"context"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// PortfolioService handles read-only portfolio lookups
type PortfolioService struct {
	PortfolioRepo domain.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(portfolioRepo domain.PortfolioRepository) *PortfolioService {
	return &PortfolioService{PortfolioRepo: portfolioRepo}
}

// GetForClient returns the portfolio snapshot of a client
// Returns ErrPortfolioNotFound if none exists. The client itself is not checked:
// snapshots are static and outlive deleted clients.
func (s *PortfolioService) GetForClient(ctx context.Context, clientID string) (*domain.Portfolio, error) {
	return s.PortfolioRepo.GetByClientID(ctx, clientID)
}
