package domain

import "errors"

var (
	// ErrInvalidCounts is returned when delivery counters are negative or
	// successes exceed totals.
	ErrInvalidCounts = errors.New("invalid delivery counts")
)

// DeliveryMetrics is a snapshot of operation-wide delivery performance.
// It is a passive value object: callers construct and update it, the
// service only validates and stores it.
type DeliveryMetrics struct {
	// TotalDeliveries is the number of deliveries attempted.
	TotalDeliveries int `json:"total_deliveries"`
	// SuccessfulDeliveries is the number of deliveries completed without incident.
	SuccessfulDeliveries int `json:"successful_deliveries"`
	// AverageResolutionTime is the mean incident resolution time, in minutes.
	AverageResolutionTime float64 `json:"average_resolution_time"`
	// CustomerSatisfactionScore is the rolling CSAT score (0-5 scale).
	CustomerSatisfactionScore float64 `json:"customer_satisfaction_score"`
	// CostSavings is the cumulative savings attributed to automation, in rupees.
	CostSavings float64 `json:"cost_savings"`
	// EfficiencyImprovement is the relative efficiency gain, in percent.
	EfficiencyImprovement float64 `json:"efficiency_improvement"`
}

// Validate checks the counter invariants: non-negative counts and
// successes never exceeding totals.
func (m DeliveryMetrics) Validate() error {
	if m.TotalDeliveries < 0 || m.SuccessfulDeliveries < 0 {
		return ErrInvalidCounts
	}
	if m.SuccessfulDeliveries > m.TotalDeliveries {
		return ErrInvalidCounts
	}
	return nil
}

// SuccessRate returns the delivery success percentage.
// With no deliveries recorded it is exactly 0.0, never a division fault.
func (m DeliveryMetrics) SuccessRate() float64 {
	if m.TotalDeliveries == 0 {
		return 0.0
	}
	return float64(m.SuccessfulDeliveries) / float64(m.TotalDeliveries) * 100
}
