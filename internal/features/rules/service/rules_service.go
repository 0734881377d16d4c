package service

import (
	"fmt"
	"strings"
	"time"

	"remedy-engine/internal/features/rules/domain"
	"remedy-engine/internal/features/rules/ports"
)

// RuleService evaluates the Indian-market remediation rules.
// It holds no mutable state: every call is independent and deterministic
// given its inputs, so it is safe for any number of concurrent callers.
type RuleService struct {
	compensation ports.CompensationTable
	peakHours    ports.PeakHourTable
	festivals    ports.FestivalCalendar
}

// NewRuleService creates a RuleService backed by the given lookup tables.
func NewRuleService(compensation ports.CompensationTable, peakHours ports.PeakHourTable, festivals ports.FestivalCalendar) *RuleService {
	return &RuleService{
		compensation: compensation,
		peakHours:    peakHours,
		festivals:    festivals,
	}
}

// CalculateCompensation computes the voucher offered for a delayed delivery.
//
// The base amount comes from the per-tier table and is escalated by delay
// severity: doubled beyond 60 minutes, multiplied by 1.5 beyond 30 (strict
// thresholds; exactly 30 or 60 minutes does not escalate). The result is
// capped at 20% of the order value, and the cap always wins.
//
// Negative delays and negative order values are caller contract violations
// and are rejected. A zero order value is legal: the cap forces a zero offer.
func (s *RuleService) CalculateCompensation(delayMinutes int, orderValue domain.Paise, tier domain.CustomerTier) (*domain.CompensationOffer, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}
	if delayMinutes < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidDelay, delayMinutes)
	}
	if orderValue < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOrderValue, orderValue)
	}

	base, ok := s.compensation.BaseAmount(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}

	amount := base
	switch {
	case delayMinutes > 60:
		amount *= 2
	case delayMinutes > 30:
		amount = amount * 3 / 2
	}

	// Cap at 20% of order value, floored to the paisa.
	if maxCompensation := orderValue / 5; amount > maxCompensation {
		amount = maxCompensation
	}

	return &domain.CompensationOffer{
		Type:        domain.CompensationVoucher,
		AmountPaise: amount,
		Currency:    "INR",
		Message:     fmt.Sprintf("%s voucher for your inconvenience", amount),
		ValidDays:   domain.OfferValidDays,
	}, nil
}

// GetPeakHours returns the peak delivery windows for a city.
// Lookup is case-insensitive; unlisted cities get the default pair.
// The function is pure and total, it never fails.
func (s *RuleService) GetPeakHours(city string) domain.PeakWindow {
	if w, ok := s.peakHours.Windows(strings.ToLower(strings.TrimSpace(city))); ok {
		return w
	}
	return s.peakHours.Default()
}

// GetFestivalImpact reports how the festival calendar affects deliveries on
// the given date (YYYY-MM-DD). The date is tested for inclusive containment
// against each calendar entry in table order; the first match wins.
func (s *RuleService) GetFestivalImpact(date string) (*domain.FestivalImpact, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}

	for _, entry := range s.festivals.Entries() {
		if entry.Contains(day) {
			return &domain.FestivalImpact{
				IsFestivalPeriod:    true,
				FestivalName:        entry.Name,
				ImpactLevel:         entry.Impact,
				DeliveryAdjustments: entry.Adjustments,
			}, nil
		}
	}

	return &domain.FestivalImpact{
		ImpactLevel:         domain.ImpactNone,
		DeliveryAdjustments: []string{},
	}, nil
}
