package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"go.uber.org/zap"
)

// ResolutionKind tells where a recommendation identifier was resolved
type ResolutionKind int

const (
	ResolutionNotFound ResolutionKind = iota
	ResolutionPersisted
	ResolutionSynthetic
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionPersisted:
		return "persisted"
	case ResolutionSynthetic:
		return "synthetic"
	default:
		return "not_found"
	}
}

// Resolution is the outcome of looking up a recommendation identifier.
// Recommendation is nil when Kind is ResolutionNotFound.
type Resolution struct {
	Kind           ResolutionKind
	Recommendation *domain.Recommendation
}

// ActionInput represents a review decision on a recommendation
type ActionInput struct {
	Action string
	Notes  string
}

// ActionResult is the recorded recommendation and the path that produced it
type ActionResult struct {
	Recommendation *domain.Recommendation
	Resolution     ResolutionKind
}

// RecommendationService handles recommendation lookup and review
type RecommendationService struct {
	ClientRepo         domain.ClientRepository
	RecommendationRepo domain.RecommendationRepository
	Logger             *zap.Logger
	Now                func() time.Time

	// mu serializes TakeAction so lookup, regeneration and append happen as one step
	mu sync.Mutex
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(
	clientRepo domain.ClientRepository,
	recRepo domain.RecommendationRepository,
	logger *zap.Logger,
) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		ClientRepo:         clientRepo,
		RecommendationRepo: recRepo,
		Logger:             logger,
		Now:                time.Now,
	}
}

// ListForClient returns the recommendations shown for a client
// Logic:
//  1. Persisted recommendations for the client, if any exist
//  2. Otherwise the two synthetic recommendations generated from the client's risk profile
//  3. ErrClientNotFound if there are no persisted recommendations and the client is unknown
func (s *RecommendationService) ListForClient(ctx context.Context, clientID string) ([]*domain.Recommendation, error) {
	// 1. Persisted recommendations
	recs, err := s.RecommendationRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	if len(recs) > 0 {
		return recs, nil
	}

	// 2. Generate from the client's risk profile
	client, err := s.ClientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.Logger.Debug("generating recommendations",
		zap.String("client_id", client.ID),
		zap.String("risk_profile", string(client.RiskProfile)),
	)
	return Generate(client, s.Now()), nil
}

// Resolve maps an identifier to a recommendation without side effects
// Logic:
//  1. Exact match in the recommendation store -> Persisted
//  2. Parse rec-<clientId>-<n>; if the client exists, regenerate its pair and match by id -> Synthetic
//  3. Otherwise -> NotFound
//
// An error is returned only when a store fails for a reason other than a missing record.
func (s *RecommendationService) Resolve(ctx context.Context, id string) (Resolution, error) {
	// 1. Persisted store
	rec, err := s.RecommendationRepo.GetByID(ctx, id)
	if err == nil {
		return Resolution{Kind: ResolutionPersisted, Recommendation: rec}, nil
	}
	if !errors.Is(err, domain.ErrRecommendationNotFound) {
		return Resolution{}, fmt.Errorf("failed to get recommendation: %w", err)
	}

	// 2. Synthetic identifier
	clientID, _, ok := domain.ParseSyntheticID(id)
	if !ok {
		return Resolution{Kind: ResolutionNotFound}, nil
	}

	client, err := s.ClientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return Resolution{Kind: ResolutionNotFound}, nil
		}
		return Resolution{}, fmt.Errorf("failed to get client: %w", err)
	}

	for _, generated := range Generate(client, s.Now()) {
		if generated.ID == id {
			return Resolution{Kind: ResolutionSynthetic, Recommendation: generated}, nil
		}
	}

	// 3. Nothing matched
	return Resolution{Kind: ResolutionNotFound}, nil
}

// GetDetail returns a single recommendation, persisted or synthetic
// Returns ErrRecommendationNotFound if the identifier cannot be resolved
func (s *RecommendationService) GetDetail(ctx context.Context, id string) (*domain.Recommendation, error) {
	res, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Kind == ResolutionNotFound {
		return nil, fmt.Errorf("recommendation %s: %w", id, domain.ErrRecommendationNotFound)
	}
	return res.Recommendation, nil
}

// TakeAction approves or rejects a recommendation
// Logic:
//  1. Validate the action before touching any store (ErrInvalidAction)
//  2. Resolve the identifier
//  3. Persisted -> update status, action date and notes in place
//  4. Synthetic -> append a new persisted record carrying the template content and the outcome
//  5. NotFound -> ErrRecommendationNotFound
func (s *RecommendationService) TakeAction(ctx context.Context, id string, input ActionInput) (*ActionResult, error) {
	// 1. Validate action
	status, err := domain.ParseAction(input.Action)
	if err != nil {
		s.Logger.Debug("rejected recommendation action",
			zap.String("recommendation_id", id),
			zap.String("action", input.Action),
		)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. Resolve
	res, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := res.Recommendation
	switch res.Kind {
	case ResolutionPersisted:
		// 3. Update in place
		rec.ApplyAction(status, input.Notes, s.Now())
		if err := s.RecommendationRepo.Update(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to update recommendation: %w", err)
		}
	case ResolutionSynthetic:
		// 4. Materialize
		rec.ApplyAction(status, input.Notes, s.Now())
		if err := s.RecommendationRepo.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to persist recommendation: %w", err)
		}
	default:
		// 5. Unresolved
		return nil, fmt.Errorf("recommendation %s: %w", id, domain.ErrRecommendationNotFound)
	}

	s.Logger.Info("recommendation actioned",
		zap.String("recommendation_id", rec.ID),
		zap.String("client_id", rec.ClientID),
		zap.String("status", string(rec.Status)),
		zap.Stringer("resolution", res.Kind),
	)

	return &ActionResult{Recommendation: rec, Resolution: res.Kind}, nil
}
