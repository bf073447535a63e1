package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/Jiayao2006/AIVest/internal/usecase/search"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateClientInput represents the input for creating a client.
// AUM is kept as text so both JSON numbers and numeric strings can be accepted.
type CreateClientInput struct {
	Name        string
	Phone       string
	AUM         string
	Domicile    string
	Segments    []string
	KeyContacts []string
	Description string
	RiskProfile string
}

// DeletedClient summarizes a removed client
type DeletedClient struct {
	ID   string
	Name string
}

// ClientService handles client record operations
type ClientService struct {
	ClientRepo domain.ClientRepository
	Logger     *zap.Logger

	// StrictRiskProfile rejects risk profiles outside Conservative / Moderate / Aggressive
	StrictRiskProfile bool
	Now               func() time.Time
}

// NewClientService creates a new ClientService instance
func NewClientService(clientRepo domain.ClientRepository, logger *zap.Logger, strictRiskProfile bool) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{
		ClientRepo:        clientRepo,
		Logger:            logger,
		StrictRiskProfile: strictRiskProfile,
		Now:               time.Now,
	}
}

// Create validates the input and appends a new client
// Logic:
//  1. Trim text fields; collect every missing required field (name, phone, aum, domicile, riskProfile).
//     A zero AUM counts as missing, so it is reported together with the other fields
//  2. Reject an AUM that is not a number
//  3. Optionally enforce the known risk profiles
//  4. Store the client; the store assigns c + (max numeric suffix + 1)
func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	// 1. Required fields
	input = trimInput(input)

	var aum decimal.Decimal
	var aumErr error
	if input.AUM != "" {
		aum, aumErr = decimal.NewFromString(input.AUM)
	}

	missing := make([]string, 0)
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Phone == "" {
		missing = append(missing, "phone")
	}
	if input.AUM == "" || (aumErr == nil && aum.IsZero()) {
		missing = append(missing, "aum")
	}
	if input.Domicile == "" {
		missing = append(missing, "domicile")
	}
	if input.RiskProfile == "" {
		missing = append(missing, "riskProfile")
	}
	if len(missing) > 0 {
		s.Logger.Debug("client rejected", zap.Strings("missing", missing))
		return nil, &domain.ValidationError{Missing: missing}
	}

	// 2. AUM
	if aumErr != nil {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("aum %q is not a number", input.AUM)}
	}

	// 3. Risk profile policy
	riskProfile := domain.RiskProfile(input.RiskProfile)
	if s.StrictRiskProfile && !riskProfile.IsKnown() {
		return nil, &domain.ValidationError{
			Reason: fmt.Sprintf("riskProfile must be one of Conservative, Moderate, Aggressive (got %q)", input.RiskProfile),
		}
	}

	createdAt := s.Now().UTC()
	client := &domain.Client{
		Name:        input.Name,
		Phone:       input.Phone,
		AUM:         aum,
		Domicile:    input.Domicile,
		Segments:    input.Segments,
		KeyContacts: input.KeyContacts,
		Description: input.Description,
		RiskProfile: riskProfile,
		CreatedAt:   &createdAt,
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}

	// 4. Store
	if err := s.ClientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.Logger.Info("client created",
		zap.String("client_id", client.ID),
		zap.String("name", client.Name),
		zap.String("aum", client.AUM.String()),
	)
	return client, nil
}

// Delete removes a client and returns its identifier and name
// Returns ErrClientNotFound if the client does not exist
func (s *ClientService) Delete(ctx context.Context, id string) (*DeletedClient, error) {
	removed, err := s.ClientRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("client deleted",
		zap.String("client_id", removed.ID),
		zap.String("name", removed.Name),
	)
	return &DeletedClient{ID: removed.ID, Name: removed.Name}, nil
}

// Get retrieves a single client
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.ClientRepo.GetByID(ctx, id)
}

// List retrieves every client in insertion order
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.ClientRepo.List(ctx)
}

// Search parses the raw query and runs it over the current client list
func (s *ClientService) Search(ctx context.Context, raw search.RawQuery) ([]*domain.Client, error) {
	q, err := search.ParseQuery(raw)
	if err != nil {
		return nil, err
	}

	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return search.Run(clients, q), nil
}

func trimInput(in CreateClientInput) CreateClientInput {
	out := CreateClientInput{
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		AUM:         strings.TrimSpace(in.AUM),
		Domicile:    strings.TrimSpace(in.Domicile),
		Description: strings.TrimSpace(in.Description),
		RiskProfile: strings.TrimSpace(in.RiskProfile),
		Segments:    trimList(in.Segments),
		KeyContacts: trimList(in.KeyContacts),
	}
	return out
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
