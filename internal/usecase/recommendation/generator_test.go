package recommendation

import (
	"testing"
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		riskProfile domain.RiskProfile
		wantTitles  [2]string
		wantTypes   [2]string
	}{
		{
			name:        "Conservative",
			riskProfile: domain.RiskProfileConservative,
			wantTitles:  [2]string{"Annual Portfolio Review", "Bond Duration Adjustment"},
			wantTypes:   [2]string{"rebalance", "risk_management"},
		},
		{
			name:        "Moderate",
			riskProfile: domain.RiskProfileModerate,
			wantTitles:  [2]string{"International Diversification", "Alternative Investment Allocation"},
			wantTypes:   [2]string{"diversify", "opportunity"},
		},
		{
			name:        "Aggressive",
			riskProfile: domain.RiskProfileAggressive,
			wantTitles:  [2]string{"Growth Sector Concentration", "Emerging Markets Exposure"},
			wantTypes:   [2]string{"opportunity", "rebalance"},
		},
		{
			name:        "Unknown profile falls back to Moderate",
			riskProfile: "Speculative",
			wantTitles:  [2]string{"International Diversification", "Alternative Investment Allocation"},
			wantTypes:   [2]string{"diversify", "opportunity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &domain.Client{ID: "c042", RiskProfile: tt.riskProfile}

			recs := Generate(client, now)

			require.Len(t, recs, 2)
			for i, rec := range recs {
				assert.Equal(t, domain.SyntheticRecommendationID("c042", i+1), rec.ID)
				assert.Equal(t, "c042", rec.ClientID)
				assert.Equal(t, tt.wantTitles[i], rec.Title)
				assert.Equal(t, tt.wantTypes[i], rec.Type)
				assert.Equal(t, domain.StatusPending, rec.Status)
				assert.Equal(t, now, rec.CreatedAt)
				assert.Nil(t, rec.ActionDate)
				assert.Nil(t, rec.Notes)
			}
		})
	}
}

func TestGenerate_TemplateContent(t *testing.T) {
	recs := Generate(&domain.Client{ID: "c001", RiskProfile: domain.RiskProfileConservative}, time.Now())

	assert.Equal(t, "Quarterly rebalancing to maintain conservative allocation targets and ensure capital preservation focus.", recs[0].Summary)
	assert.Equal(t, domain.PriorityMedium, recs[0].Priority)
	assert.Equal(t, 78, recs[0].Confidence)
	assert.Equal(t, "+0.3% stability improvement", recs[0].EstimatedImpact)

	assert.Equal(t, domain.PriorityLow, recs[1].Priority)
	assert.Equal(t, 72, recs[1].Confidence)
	assert.Equal(t, "+0.2% yield protection", recs[1].EstimatedImpact)
}

func TestGenerate_ContentStableAcrossCalls(t *testing.T) {
	client := &domain.Client{ID: "c004", RiskProfile: domain.RiskProfileModerate}

	first := Generate(client, time.Unix(0, 0))
	second := Generate(client, time.Unix(100, 0))

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Summary, second[i].Summary)
		assert.NotEqual(t, first[i].CreatedAt, second[i].CreatedAt)
	}
}
