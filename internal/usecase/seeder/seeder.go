package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"go.uber.org/zap"
)

// Seeder loads the fixed starting dataset into the stores
type Seeder struct {
	ClientRepo         domain.ClientRepository
	RecommendationRepo domain.RecommendationRepository
	Logger             *zap.Logger
}

// NewSeeder creates a new Seeder instance
func NewSeeder(clientRepo domain.ClientRepository, recRepo domain.RecommendationRepository, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		ClientRepo:         clientRepo,
		RecommendationRepo: recRepo,
		Logger:             logger,
	}
}

// Seed ensures every seed client and static recommendation exists.
// Records already present are left untouched, so Seed can run more than once.
func (s *Seeder) Seed(ctx context.Context) error {
	clientsCreated := 0
	for _, client := range SeedClients() {
		// Try to get the client by ID
		_, err := s.ClientRepo.GetByID(ctx, client.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrClientNotFound) {
			return fmt.Errorf("failed to look up seed client %s: %w", client.ID, err)
		}

		// Validate before creating
		if err := client.Validate(); err != nil {
			return fmt.Errorf("invalid seed client %s: %w", client.ID, err)
		}
		if err := s.ClientRepo.Create(ctx, client); err != nil {
			return fmt.Errorf("failed to seed client %s: %w", client.ID, err)
		}
		clientsCreated++
	}

	recsCreated := 0
	for _, rec := range SeedRecommendations() {
		_, err := s.RecommendationRepo.GetByID(ctx, rec.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRecommendationNotFound) {
			return fmt.Errorf("failed to look up seed recommendation %s: %w", rec.ID, err)
		}
		if err := s.RecommendationRepo.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed recommendation %s: %w", rec.ID, err)
		}
		recsCreated++
	}

	s.Logger.Info("seed data loaded",
		zap.Int("clients_created", clientsCreated),
		zap.Int("recommendations_created", recsCreated),
	)
	return nil
}
