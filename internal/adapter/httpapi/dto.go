package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
	"github.com/Jiayao2006/AIVest/internal/usecase/client"
)

type clientResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	AUM         float64    `json:"aum"`
	Domicile    string     `json:"domicile"`
	Segments    []string   `json:"segments"`
	KeyContacts []string   `json:"keyContacts"`
	Description string     `json:"description"`
	RiskProfile string     `json:"riskProfile"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		AUM:         c.AUM.InexactFloat64(),
		Domicile:    c.Domicile,
		Segments:    nonNil(c.Segments),
		KeyContacts: nonNil(c.KeyContacts),
		Description: c.Description,
		RiskProfile: string(c.RiskProfile),
		CreatedAt:   c.CreatedAt,
	}
}

func toClientResponses(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}

type deletedClientResponse struct {
	Message       string            `json:"message"`
	DeletedClient deletedClientBody `json:"deletedClient"`
}

type deletedClientBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toDeletedClientResponse(d *client.DeletedClient) deletedClientResponse {
	return deletedClientResponse{
		Message:       "Client deleted successfully",
		DeletedClient: deletedClientBody{ID: d.ID, Name: d.Name},
	}
}

// createClientRequest accepts the loose shapes the frontend sends:
// aum as a number or numeric string, segments / keyContacts as a string or a list.
type createClientRequest struct {
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	AUM         flexibleNumber `json:"aum"`
	Domicile    string         `json:"domicile"`
	Segments    stringList     `json:"segments"`
	KeyContacts stringList     `json:"keyContacts"`
	Description string         `json:"description"`
	RiskProfile string         `json:"riskProfile"`
}

func (r createClientRequest) toInput() client.CreateClientInput {
	return client.CreateClientInput{
		Name:        r.Name,
		Phone:       r.Phone,
		AUM:         string(r.AUM),
		Domicile:    r.Domicile,
		Segments:    r.Segments,
		KeyContacts: r.KeyContacts,
		Description: r.Description,
		RiskProfile: r.RiskProfile,
	}
}

// flexibleNumber keeps the textual form of a JSON number or string.
// null and false decode to the empty string so they count as missing.
type flexibleNumber string

func (n *flexibleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = flexibleNumber(s)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("aum must be a number")
	default:
		*n = flexibleNumber(data)
	}
	return nil
}

// stringList decodes either a single string or a list of strings
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = stringList{s}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

type actionRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

type recommendationResponse struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"clientId"`
	Type                string     `json:"type"`
	Title               string     `json:"title"`
	Summary             string     `json:"summary"`
	Priority            string     `json:"priority"`
	Confidence          int        `json:"confidence"`
	EstimatedImpact     string     `json:"estimatedImpact"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	ActionDate          *time.Time `json:"actionDate,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	DetailedDescription string     `json:"detailedDescription,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	Risks               []string   `json:"risks,omitempty"`
	ImplementationSteps []string   `json:"implementationSteps,omitempty"`
}

func toRecommendationResponse(r *domain.Recommendation) recommendationResponse {
	return recommendationResponse{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		Type:                r.Type,
		Title:               r.Title,
		Summary:             r.Summary,
		Priority:            string(r.Priority),
		Confidence:          r.Confidence,
		EstimatedImpact:     r.EstimatedImpact,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
		ActionDate:          r.ActionDate,
		Notes:               r.Notes,
		DetailedDescription: r.DetailedDescription,
		Benefits:            r.Benefits,
		Risks:               r.Risks,
		ImplementationSteps: r.ImplementationSteps,
	}
}

func toRecommendationResponses(recs []*domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecommendationResponse(r))
	}
	return out
}

type actionResponse struct {
	Success        bool                   `json:"success"`
	Recommendation recommendationResponse `json:"recommendation"`
}

type allocationResponse struct {
	AssetClass string  `json:"assetClass"`
	Percentage float64 `json:"percentage"`
	Value      float64 `json:"value"`
}

type performanceResponse struct {
	YTD       float64 `json:"ytd"`
	OneYear   float64 `json:"oneYear"`
	ThreeYear float64 `json:"threeYear"`
}

type riskMetricsResponse struct {
	SharpeRatio float64 `json:"sharpeRatio"`
	Volatility  float64 `json:"volatility"`
	MaxDrawdown float64 `json:"maxDrawdown"`
	Beta        float64 `json:"beta"`
}

type portfolioResponse struct {
	ClientID    string               `json:"clientId"`
	TotalValue  float64              `json:"totalValue"`
	LastUpdated time.Time            `json:"lastUpdated"`
	Allocations []allocationResponse `json:"allocations"`
	Performance performanceResponse  `json:"performance"`
	RiskMetrics riskMetricsResponse  `json:"riskMetrics"`
}

func toPortfolioResponse(p *domain.Portfolio) portfolioResponse {
	allocations := make([]allocationResponse, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		allocations = append(allocations, allocationResponse{
			AssetClass: a.AssetClass,
			Percentage: a.Percentage,
			Value:      a.Value.InexactFloat64(),
		})
	}
	return portfolioResponse{
		ClientID:    p.ClientID,
		TotalValue:  p.TotalValue.InexactFloat64(),
		LastUpdated: p.LastUpdated,
		Allocations: allocations,
		Performance: performanceResponse{
			YTD:       p.Performance.YTD,
			OneYear:   p.Performance.OneYear,
			ThreeYear: p.Performance.ThreeYear,
		},
		RiskMetrics: riskMetricsResponse{
			SharpeRatio: p.RiskMetrics.SharpeRatio,
			Volatility:  p.RiskMetrics.Volatility,
			MaxDrawdown: p.RiskMetrics.MaxDrawdown,
			Beta:        p.RiskMetrics.Beta,
		},
	}
}

type aumRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type summaryResponse struct {
	TotalClients         int              `json:"totalClients"`
	TotalAUM             float64          `json:"totalAUM"`
	AvgAUM               float64          `json:"avgAUM"`
	RiskDistribution     map[string]int   `json:"riskDistribution"`
	DomicileDistribution map[string]int   `json:"domicileDistribution"`
	AUMRange             aumRangeResponse `json:"aumRange"`
}

func toSummaryResponse(s *analytics.Summary) summaryResponse {
	return summaryResponse{
		TotalClients:         s.TotalClients,
		TotalAUM:             s.TotalAUM.InexactFloat64(),
		AvgAUM:               s.AvgAUM.InexactFloat64(),
		RiskDistribution:     s.RiskDistribution,
		DomicileDistribution: s.DomicileDistribution,
		AUMRange: aumRangeResponse{
			Min: s.MinAUM.InexactFloat64(),
			Max: s.MaxAUM.InexactFloat64(),
		},
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
