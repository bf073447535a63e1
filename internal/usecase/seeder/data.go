package seeder

import (
	"time"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/shopspring/decimal"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedClients returns the initial client book (c001-c010)
func SeedClients() []*domain.Client {
	return []*domain.Client{
		{ID: "c001", Name: "Elena Rossi-Marchetti", Phone: "+41 22 999 1234", AUM: money("860"), Domicile: "Switzerland",
			Segments: []string{"Family Office", "Wealth Preservation"}, KeyContacts: []string{"Elena Rossi"},
			Description: "Multi-generational family wealth focused on capital preservation and sustainable investments.",
			RiskProfile: domain.RiskProfileConservative},
		{ID: "c002", Name: "Daniel Chen", Phone: "+1 415 555 0187", AUM: money("1250"), Domicile: "United States",
			Segments: []string{"Tech Entrepreneur", "Growth"}, KeyContacts: []string{"Daniel Lee"},
			Description: "Tech founder post-IPO, diversifying proceeds into low-volatility and impact strategies.",
			RiskProfile: domain.RiskProfileModerate},
		{ID: "c003", Name: "Sophie Turner-Webb", Phone: "+44 20 7946 0958", AUM: money("430"), Domicile: "United Kingdom",
			Segments: []string{"VC Proceeds", "Renewables"}, KeyContacts: []string{"Sophie Turner", "Mark Webb"},
			Description: "Recent exits in green energy funds; exploring direct co-investment opportunities.",
			RiskProfile: domain.RiskProfileAggressive},
		{ID: "c004", Name: "Anders Vikström", Phone: "+47 22 12 3456", AUM: money("980"), Domicile: "Norway",
			Segments: []string{"Shipping", "Alternatives"}, KeyContacts: []string{"Anders Vik"},
			Description: "Maritime industry veteran with liquidity from fleet divestiture.",
			RiskProfile: domain.RiskProfileModerate},
		{ID: "c005", Name: "Priya Singh-Patel", Phone: "+1 416 555 0923", AUM: money("510"), Domicile: "Canada",
			Segments: []string{"Foundation", "ESG"}, KeyContacts: []string{"Priya Singh"},
			Description: "Philanthropist emphasizing ESG-aligned fixed income and mission-related investments.",
			RiskProfile: domain.RiskProfileConservative},
		{ID: "c006", Name: "Michael Tan-Wong", Phone: "+65 6555 4821", AUM: money("1575"), Domicile: "Singapore",
			Segments: []string{"Private Equity", "Diversification"}, KeyContacts: []string{"Michael Tan"},
			Description: "PE executive diversifying concentrated exposure toward global multi-asset solutions.",
			RiskProfile: domain.RiskProfileModerate},
		{ID: "c007", Name: "Charlotte King-Harrison", Phone: "+61 2 9555 7364", AUM: money("690"), Domicile: "Australia",
			Segments: []string{"Agriculture", "Real Assets"}, KeyContacts: []string{"Charlotte King"},
			Description: "Agricultural heiress reallocating from direct land holdings into inflation-protected funds.",
			RiskProfile: domain.RiskProfileConservative},
		{ID: "c008", Name: "Julien Moreau-Dubois", Phone: "+33 1 42 55 9871", AUM: money("320"), Domicile: "France",
			Segments: []string{"Art Collector", "Estate Planning"}, KeyContacts: []string{"Julien Moreau"},
			Description: "Art collector and gallery owner focusing on art-backed lending and estate optimization.",
			RiskProfile: domain.RiskProfileModerate},
		{ID: "c009", Name: "Isabella Rodriguez-Santos", Phone: "+34 91 555 2847", AUM: money("745"), Domicile: "Spain",
			Segments: []string{"Real Estate", "Family Wealth"}, KeyContacts: []string{"Isabella Rodriguez"},
			Description: "Property magnate transitioning from direct real estate to diversified portfolios.",
			RiskProfile: domain.RiskProfileConservative},
		{ID: "c010", Name: "James Wellington III", Phone: "+44 20 7555 6293", AUM: money("1890"), Domicile: "United Kingdom",
			Segments: []string{"Inherited Wealth", "Hedge Funds"}, KeyContacts: []string{"James Wellington"},
			Description: "Third-generation wealth with focus on alternative investments and tax optimization.",
			RiskProfile: domain.RiskProfileAggressive},
	}
}

// SeedPortfolios returns one portfolio snapshot per seed client
func SeedPortfolios() []*domain.Portfolio {
	return []*domain.Portfolio{
		{
			ClientID: "c001", TotalValue: money("860"), LastUpdated: ts("2025-08-25T10:00:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Fixed Income", Percentage: 45, Value: money("387")},
				{AssetClass: "Equities", Percentage: 35, Value: money("301")},
				{AssetClass: "Real Estate", Percentage: 15, Value: money("129")},
				{AssetClass: "Cash", Percentage: 5, Value: money("43")},
			},
			Performance: domain.PerformanceMetrics{YTD: 5.8, OneYear: 8.2, ThreeYear: 6.5},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.2, Volatility: 8.5, MaxDrawdown: -4.2, Beta: 0.75},
		},
		{
			ClientID: "c002", TotalValue: money("1250"), LastUpdated: ts("2025-08-25T10:00:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Equities", Percentage: 60, Value: money("750")},
				{AssetClass: "Alternatives", Percentage: 25, Value: money("312.5")},
				{AssetClass: "Fixed Income", Percentage: 10, Value: money("125")},
				{AssetClass: "Cash", Percentage: 5, Value: money("62.5")},
			},
			Performance: domain.PerformanceMetrics{YTD: 12.4, OneYear: 18.7, ThreeYear: 15.2},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.8, Volatility: 15.2, MaxDrawdown: -12.5, Beta: 1.4},
		},
		{
			ClientID: "c003", TotalValue: money("430"), LastUpdated: ts("2025-08-26T15:30:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Equities", Percentage: 70, Value: money("301")},
				{AssetClass: "Alternatives", Percentage: 20, Value: money("86")},
				{AssetClass: "Cash", Percentage: 10, Value: money("43")},
			},
			Performance: domain.PerformanceMetrics{YTD: 18.7, OneYear: 24.3, ThreeYear: 19.8},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.6, Volatility: 22.1, MaxDrawdown: -18.3, Beta: 1.8},
		},
		{
			ClientID: "c004", TotalValue: money("980"), LastUpdated: ts("2025-08-26T09:45:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Alternatives", Percentage: 40, Value: money("392")},
				{AssetClass: "Equities", Percentage: 30, Value: money("294")},
				{AssetClass: "Fixed Income", Percentage: 20, Value: money("196")},
				{AssetClass: "Cash", Percentage: 10, Value: money("98")},
			},
			Performance: domain.PerformanceMetrics{YTD: 9.3, OneYear: 12.8, ThreeYear: 11.4},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.4, Volatility: 12.7, MaxDrawdown: -8.9, Beta: 1.1},
		},
		{
			ClientID: "c005", TotalValue: money("510"), LastUpdated: ts("2025-08-26T11:20:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Fixed Income", Percentage: 60, Value: money("306")},
				{AssetClass: "Equities", Percentage: 25, Value: money("127.5")},
				{AssetClass: "ESG Funds", Percentage: 10, Value: money("51")},
				{AssetClass: "Cash", Percentage: 5, Value: money("25.5")},
			},
			Performance: domain.PerformanceMetrics{YTD: 4.2, OneYear: 6.8, ThreeYear: 5.1},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 0.9, Volatility: 6.3, MaxDrawdown: -3.1, Beta: 0.6},
		},
		{
			ClientID: "c006", TotalValue: money("1575"), LastUpdated: ts("2025-08-26T14:10:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Equities", Percentage: 45, Value: money("708.75")},
				{AssetClass: "Alternatives", Percentage: 30, Value: money("472.5")},
				{AssetClass: "Fixed Income", Percentage: 15, Value: money("236.25")},
				{AssetClass: "Cash", Percentage: 10, Value: money("157.5")},
			},
			Performance: domain.PerformanceMetrics{YTD: 11.7, OneYear: 15.9, ThreeYear: 13.2},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.5, Volatility: 13.8, MaxDrawdown: -9.7, Beta: 1.2},
		},
		{
			ClientID: "c007", TotalValue: money("690"), LastUpdated: ts("2025-08-26T16:00:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Real Estate", Percentage: 35, Value: money("241.5")},
				{AssetClass: "Fixed Income", Percentage: 30, Value: money("207")},
				{AssetClass: "Commodities", Percentage: 20, Value: money("138")},
				{AssetClass: "Equities", Percentage: 10, Value: money("69")},
				{AssetClass: "Cash", Percentage: 5, Value: money("34.5")},
			},
			Performance: domain.PerformanceMetrics{YTD: 7.1, OneYear: 9.4, ThreeYear: 8.8},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.1, Volatility: 9.2, MaxDrawdown: -5.6, Beta: 0.8},
		},
		{
			ClientID: "c008", TotalValue: money("320"), LastUpdated: ts("2025-08-26T12:45:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Art & Collectibles", Percentage: 40, Value: money("128")},
				{AssetClass: "Fixed Income", Percentage: 30, Value: money("96")},
				{AssetClass: "Equities", Percentage: 20, Value: money("64")},
				{AssetClass: "Cash", Percentage: 10, Value: money("32")},
			},
			Performance: domain.PerformanceMetrics{YTD: 6.8, OneYear: 10.2, ThreeYear: 7.9},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.0, Volatility: 11.5, MaxDrawdown: -7.2, Beta: 0.9},
		},
		{
			ClientID: "c009", TotalValue: money("745"), LastUpdated: ts("2025-08-26T13:30:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Real Estate", Percentage: 50, Value: money("372.5")},
				{AssetClass: "Fixed Income", Percentage: 30, Value: money("223.5")},
				{AssetClass: "Equities", Percentage: 15, Value: money("111.75")},
				{AssetClass: "Cash", Percentage: 5, Value: money("37.25")},
			},
			Performance: domain.PerformanceMetrics{YTD: 5.9, OneYear: 8.7, ThreeYear: 7.2},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.0, Volatility: 8.1, MaxDrawdown: -4.8, Beta: 0.7},
		},
		{
			ClientID: "c010", TotalValue: money("1890"), LastUpdated: ts("2025-08-26T17:15:00Z"),
			Allocations: []domain.Allocation{
				{AssetClass: "Hedge Funds", Percentage: 40, Value: money("756")},
				{AssetClass: "Equities", Percentage: 35, Value: money("661.5")},
				{AssetClass: "Alternatives", Percentage: 15, Value: money("283.5")},
				{AssetClass: "Fixed Income", Percentage: 7, Value: money("132.3")},
				{AssetClass: "Cash", Percentage: 3, Value: money("56.7")},
			},
			Performance: domain.PerformanceMetrics{YTD: 16.2, OneYear: 22.8, ThreeYear: 18.5},
			RiskMetrics: domain.RiskMetrics{SharpeRatio: 1.9, Volatility: 18.4, MaxDrawdown: -15.2, Beta: 1.6},
		},
	}
}

// SeedRecommendations returns the static recommendations available at startup
func SeedRecommendations() []*domain.Recommendation {
	return []*domain.Recommendation{
		{
			ID: "rec001", ClientID: "c001", Type: "rebalance",
			Title:           "Portfolio Rebalancing Opportunity",
			Summary:         "Current allocation has drifted from target. Recommend reducing equity exposure and increasing fixed income.",
			Priority:        domain.PriorityMedium,
			Confidence:      85,
			EstimatedImpact: "+0.8% annual return",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-20T14:30:00Z"),
			DetailedDescription: "Market analysis indicates that the current portfolio allocation has drifted significantly from the target allocation due to recent equity performance. " +
				"A rebalancing would help maintain the desired risk profile while potentially capturing value from overperforming assets.",
			Benefits: []string{
				"Restore target risk profile alignment",
				"Capture gains from overperforming equities",
				"Improve portfolio stability",
				"Maintain consistent income generation",
			},
			Risks: []string{
				"Potential short-term volatility during transition",
				"Transaction costs impact",
				"Tax implications from asset sales",
			},
			ImplementationSteps: []string{
				"Analyze current vs target allocation gaps",
				"Identify specific positions for rebalancing",
				"Plan transaction timing to minimize market impact",
				"Execute trades in optimal order",
				"Monitor and adjust as needed",
			},
		},
		{
			ID: "rec002", ClientID: "c001", Type: "opportunity",
			Title:           "ESG Investment Opportunity",
			Summary:         "New sustainable infrastructure fund aligns with client values and offers attractive risk-adjusted returns.",
			Priority:        domain.PriorityLow,
			Confidence:      72,
			EstimatedImpact: "+1.2% ESG score",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-18T09:15:00Z"),
			DetailedDescription: "A new European renewable energy infrastructure fund has become available that matches the client's sustainability objectives " +
				"while offering competitive returns and diversification benefits.",
			Benefits: []string{
				"Alignment with ESG investment mandate",
				"Diversification into infrastructure assets",
				"Stable income generation potential",
				"Positive environmental impact",
			},
			Risks: []string{
				"Regulatory changes in renewable sector",
				"Interest rate sensitivity",
				"Limited liquidity during initial years",
			},
			ImplementationSteps: []string{
				"Review fund prospectus and strategy",
				"Assess fit within current ESG allocation",
				"Plan funding from cash reserves",
				"Execute subscription process",
			},
		},
		{
			ID: "rec003", ClientID: "c002", Type: "diversify",
			Title:           "Geographic Diversification",
			Summary:         "Consider adding emerging market exposure to reduce concentration risk in US tech sector.",
			Priority:        domain.PriorityHigh,
			Confidence:      91,
			EstimatedImpact: "+2.1% Sharpe ratio",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-22T16:45:00Z"),
			DetailedDescription: "Current portfolio shows high concentration in US technology stocks post-IPO. " +
				"Adding emerging market exposure, particularly in Asia and Latin America, would improve risk-adjusted returns.",
			Benefits: []string{
				"Reduced geographic concentration risk",
				"Access to faster-growing economies",
				"Currency diversification benefits",
				"Lower correlation with existing holdings",
			},
			Risks: []string{
				"Higher political and regulatory risks",
				"Currency volatility exposure",
				"Lower liquidity in some markets",
			},
			ImplementationSteps: []string{
				"Analyze current geographic allocation",
				"Select appropriate EM fund vehicles",
				"Determine optimal allocation percentage",
				"Execute gradual implementation plan",
			},
		},
		{
			ID: "rec004", ClientID: "c003", Type: "risk-management",
			Title:           "Volatility Protection Strategy",
			Summary:         "High equity concentration suggests adding downside protection through structured products or options.",
			Priority:        domain.PriorityHigh,
			Confidence:      88,
			EstimatedImpact: "-15% portfolio volatility",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-24T11:20:00Z"),
			DetailedDescription: "With 70% equity allocation and aggressive risk profile, consider adding tail risk hedging " +
				"to protect against significant market downturns while maintaining upside participation.",
			Benefits: []string{
				"Downside protection in market stress",
				"Maintains growth potential",
				"Peace of mind for concentrated holdings",
				"Flexible implementation options",
			},
			Risks: []string{
				"Cost of protection reduces returns",
				"Complexity of structured products",
				"Timing dependency of strategies",
			},
			ImplementationSteps: []string{
				"Assess risk tolerance for hedging costs",
				"Evaluate protection strategy options",
				"Implement pilot hedging program",
				"Monitor and adjust coverage levels",
			},
		},
		{
			ID: "rec005", ClientID: "c006", Type: "opportunity",
			Title:           "Private Credit Allocation",
			Summary:         "Given PE background, consider direct lending opportunities to enhance yield in current rate environment.",
			Priority:        domain.PriorityMedium,
			Confidence:      82,
			EstimatedImpact: "+1.8% yield enhancement",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-25T09:30:00Z"),
			DetailedDescription: "Client's private equity expertise provides unique insight for evaluating direct lending opportunities. " +
				"Current market conditions favor private credit with attractive risk-adjusted yields.",
			Benefits: []string{
				"Higher yields than traditional fixed income",
				"Floating rate protection",
				"Leverage existing PE expertise",
				"Portfolio diversification benefits",
			},
			Risks: []string{
				"Illiquidity of private credit investments",
				"Credit risk in economic downturns",
				"Manager selection challenges",
			},
			ImplementationSteps: []string{
				"Review private credit market landscape",
				"Identify suitable fund managers",
				"Determine appropriate allocation size",
				"Structure commitment timeline",
			},
		},
		{
			ID: "rec006", ClientID: "c010", Type: "tax-optimization",
			Title:           "Tax-Efficient Rebalancing",
			Summary:         "Significant hedge fund gains present opportunity for tax-loss harvesting and charitable giving strategies.",
			Priority:        domain.PriorityHigh,
			Confidence:      89,
			EstimatedImpact: "+$180k tax savings",
			Status:          domain.StatusPending,
			CreatedAt:       ts("2025-08-26T14:45:00Z"),
			DetailedDescription: "Strong hedge fund performance creates substantial unrealized gains. " +
				"Implementing tax-loss harvesting and charitable remainder trust strategies could optimize after-tax wealth.",
			Benefits: []string{
				"Significant tax savings opportunity",
				"Charitable giving tax benefits",
				"Portfolio rebalancing advantages",
				"Estate planning optimization",
			},
			Risks: []string{
				"Complexity of tax strategies",
				"Timing dependency for implementation",
				"Regulatory compliance requirements",
			},
			ImplementationSteps: []string{
				"Conduct comprehensive tax analysis",
				"Coordinate with tax advisors",
				"Evaluate charitable giving options",
				"Execute optimized rebalancing plan",
			},
		},
	}
}
