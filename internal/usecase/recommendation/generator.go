package recommendation

import (
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// template is the fixed content of one generated recommendation
type template struct {
	Type            string
	Title           string
	Summary         string
	Priority        domain.Priority
	Confidence      int
	EstimatedImpact string
}

// templates holds the two recommendations offered per risk profile, in position order
var templates = map[domain.RiskProfile][2]template{
	domain.RiskProfileConservative: {
		{
			Type:            "rebalance",
			Title:           "Annual Portfolio Review",
			Summary:         "Quarterly rebalancing to maintain conservative allocation targets and ensure capital preservation focus.",
			Priority:        domain.PriorityMedium,
			Confidence:      78,
			EstimatedImpact: "+0.3% stability improvement",
		},
		{
			Type:            "risk_management",
			Title:           "Bond Duration Adjustment",
			Summary:         "Consider shortening bond duration given current interest rate environment.",
			Priority:        domain.PriorityLow,
			Confidence:      72,
			EstimatedImpact: "+0.2% yield protection",
		},
	},
	domain.RiskProfileModerate: {
		{
			Type:            "diversify",
			Title:           "International Diversification",
			Summary:         "Expand international equity exposure to capture global growth opportunities while managing home country bias.",
			Priority:        domain.PriorityMedium,
			Confidence:      82,
			EstimatedImpact: "+0.7% risk-adjusted returns",
		},
		{
			Type:            "opportunity",
			Title:           "Alternative Investment Allocation",
			Summary:         "Consider 5-10% allocation to REITs or commodities for inflation protection.",
			Priority:        domain.PriorityMedium,
			Confidence:      75,
			EstimatedImpact: "+0.5% inflation hedge",
		},
	},
	domain.RiskProfileAggressive: {
		{
			Type:            "opportunity",
			Title:           "Growth Sector Concentration",
			Summary:         "Increase exposure to high-growth technology and healthcare sectors aligned with aggressive risk tolerance.",
			Priority:        domain.PriorityHigh,
			Confidence:      75,
			EstimatedImpact: "+1.2% upside potential",
		},
		{
			Type:            "rebalance",
			Title:           "Emerging Markets Exposure",
			Summary:         "Consider adding emerging markets equity exposure for enhanced growth potential.",
			Priority:        domain.PriorityMedium,
			Confidence:      68,
			EstimatedImpact: "+1.0% growth acceleration",
		},
	},
}

// fallbackProfile supplies templates for risk profiles outside the known set
const fallbackProfile = domain.RiskProfileModerate

// Generate derives the two synthetic recommendations for a client.
// Logic:
//   - Pick the template pair for the client's risk profile (Moderate if unrecognized)
//   - Stamp ids rec-<clientId>-1 and rec-<clientId>-2, status pending, CreatedAt = now
//
// Generate never touches a store; only the id and content are stable between calls.
func Generate(client *domain.Client, now time.Time) []*domain.Recommendation {
	pair, ok := templates[client.RiskProfile]
	if !ok {
		pair = templates[fallbackProfile]
	}

	recs := make([]*domain.Recommendation, 0, len(pair))
	for i, tpl := range pair {
		recs = append(recs, &domain.Recommendation{
			ID:              domain.SyntheticRecommendationID(client.ID, i+1),
			ClientID:        client.ID,
			Type:            tpl.Type,
			Title:           tpl.Title,
			Summary:         tpl.Summary,
			Priority:        tpl.Priority,
			Confidence:      tpl.Confidence,
			EstimatedImpact: tpl.EstimatedImpact,
			Status:          domain.StatusPending,
			CreatedAt:       now,
		})
	}
	return recs
}
