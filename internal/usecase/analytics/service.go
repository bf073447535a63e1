package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary aggregates the client book
type Summary struct {
	TotalClients         int
	TotalAUM             decimal.Decimal
	AvgAUM               decimal.Decimal // Rounded to a whole number
	RiskDistribution     map[string]int
	DomicileDistribution map[string]int
	MinAUM               decimal.Decimal
	MaxAUM               decimal.Decimal
}

// DatasetCounts reports how many records each store holds
type DatasetCounts struct {
	Clients         int
	Recommendations int
	Portfolios      int
}

// AnalyticsService handles aggregate views over the stores
type AnalyticsService struct {
	ClientRepo         domain.ClientRepository
	RecommendationRepo domain.RecommendationRepository
	PortfolioRepo      domain.PortfolioRepository
}

// NewAnalyticsService creates a new AnalyticsService instance
func NewAnalyticsService(
	clientRepo domain.ClientRepository,
	recRepo domain.RecommendationRepository,
	portfolioRepo domain.PortfolioRepository,
) *AnalyticsService {
	return &AnalyticsService{
		ClientRepo:         clientRepo,
		RecommendationRepo: recRepo,
		PortfolioRepo:      portfolioRepo,
	}
}

// Segments returns the distinct segment tags across all clients, sorted
func (s *AnalyticsService) Segments(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(c *domain.Client) []string { return c.Segments })
}

// Domiciles returns the distinct domiciles across all clients, sorted
func (s *AnalyticsService) Domiciles(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(c *domain.Client) []string { return []string{c.Domicile} })
}

// RiskProfiles returns the distinct risk profiles across all clients, sorted
func (s *AnalyticsService) RiskProfiles(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(c *domain.Client) []string { return []string{string(c.RiskProfile)} })
}

// Summary calculates the AUM totals and distributions
// Logic:
//   - TotalAUM: sum of all client AUM
//   - AvgAUM: TotalAUM / client count, rounded (zero when there are no clients)
//   - Distributions: client count per risk profile and per domicile
//   - Min/Max: AUM range (zero when there are no clients)
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	summary := &Summary{
		TotalClients:         len(clients),
		TotalAUM:             decimal.Zero,
		AvgAUM:               decimal.Zero,
		RiskDistribution:     make(map[string]int),
		DomicileDistribution: make(map[string]int),
		MinAUM:               decimal.Zero,
		MaxAUM:               decimal.Zero,
	}
	if len(clients) == 0 {
		return summary, nil
	}

	summary.MinAUM = clients[0].AUM
	summary.MaxAUM = clients[0].AUM
	for _, c := range clients {
		summary.TotalAUM = summary.TotalAUM.Add(c.AUM)
		summary.RiskDistribution[string(c.RiskProfile)]++
		summary.DomicileDistribution[c.Domicile]++
		summary.MinAUM = decimal.Min(summary.MinAUM, c.AUM)
		summary.MaxAUM = decimal.Max(summary.MaxAUM, c.AUM)
	}
	summary.AvgAUM = summary.TotalAUM.Div(decimal.NewFromInt(int64(len(clients)))).Round(0)

	return summary, nil
}

// Counts reports the current size of each store
func (s *AnalyticsService) Counts(ctx context.Context) (*DatasetCounts, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	recs, err := s.RecommendationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recommendations: %w", err)
	}
	portfolios, err := s.PortfolioRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count portfolios: %w", err)
	}

	return &DatasetCounts{
		Clients:         len(clients),
		Recommendations: recs,
		Portfolios:      portfolios,
	}, nil
}

func (s *AnalyticsService) distinct(ctx context.Context, values func(*domain.Client) []string) ([]string, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range clients {
		for _, v := range values(c) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}
