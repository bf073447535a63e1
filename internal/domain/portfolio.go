package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation represents one asset-class slice of a portfolio.
// Percentages are informational and are not required to sum to 100.
type Allocation struct {
	AssetClass string
	Percentage float64
	Value      decimal.Decimal // In millions
}

// PerformanceMetrics holds trailing returns in percent
type PerformanceMetrics struct {
	YTD       float64
	OneYear   float64
	ThreeYear float64
}

// RiskMetrics holds the portfolio risk statistics
type RiskMetrics struct {
	SharpeRatio float64
	Volatility  float64
	MaxDrawdown float64
	Beta        float64
}

// Portfolio represents a read-only portfolio snapshot keyed by client identifier
type Portfolio struct {
	ClientID    string
	TotalValue  decimal.Decimal // In millions
	LastUpdated time.Time
	Allocations []Allocation
	Performance PerformanceMetrics
	RiskMetrics RiskMetrics
}

// Clone returns a deep copy of the snapshot
func (p *Portfolio) Clone() *Portfolio {
	if p == nil {
		return nil
	}
	out := *p
	out.Allocations = append([]Allocation{}, p.Allocations...)
	return &out
}
