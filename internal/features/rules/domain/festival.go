package domain

import (
	"errors"
	"time"
)

// ImpactLevel is a qualitative assessment of how a calendar period
// affects delivery operations.
type ImpactLevel string

const (
	ImpactNone   ImpactLevel = "none"
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// ErrInvalidDate is returned when a date string cannot be parsed as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// FestivalEntry is one row of the festival calendar: an inclusive date range
// mapped to a named festival and its operational impact.
type FestivalEntry struct {
	// Name is the festival name, e.g. "diwali".
	Name string
	// Start is the first day of the festival period (inclusive).
	Start time.Time
	// End is the last day of the festival period (inclusive).
	End time.Time
	// Impact is the qualitative impact on deliveries during the period.
	Impact ImpactLevel
	// Adjustments are suggested operational changes for the period.
	Adjustments []string
}

// Contains reports whether the given day falls inside the entry's range,
// boundary days included.
func (e FestivalEntry) Contains(day time.Time) bool {
	return !day.Before(e.Start) && !day.After(e.End)
}

// FestivalImpact reports whether a date falls in a festival period and
// what that means for deliveries.
type FestivalImpact struct {
	// IsFestivalPeriod is true when the date matched a calendar entry.
	IsFestivalPeriod bool `json:"is_festival_period"`
	// FestivalName is the matched festival, empty outside festival periods.
	FestivalName string `json:"festival_name,omitempty"`
	// ImpactLevel is the qualitative impact, "none" outside festival periods.
	ImpactLevel ImpactLevel `json:"impact_level"`
	// DeliveryAdjustments are suggested operational changes, empty when none apply.
	DeliveryAdjustments []string `json:"delivery_adjustments"`
}
