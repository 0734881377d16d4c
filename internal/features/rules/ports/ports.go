package ports

import "remedy-engine/internal/features/rules/domain"

// CompensationTable supplies the fixed per-tier base compensation amounts.
// Tables are loaded once at startup and treated as immutable thereafter,
// so adding a tier is an additive change rather than a new code branch.
type CompensationTable interface {
	// BaseAmount returns the base compensation for a tier, and whether the
	// tier is present in the table.
	BaseAmount(tier domain.CustomerTier) (domain.Paise, bool)
}

// PeakHourTable supplies the per-city peak delivery windows.
type PeakHourTable interface {
	// Windows returns the demand windows for a city (already lower-cased),
	// and whether the city is listed.
	Windows(city string) (domain.PeakWindow, bool)
	// Default returns the fallback windows for unlisted cities.
	Default() domain.PeakWindow
}

// FestivalCalendar supplies the festival periods in evaluation order.
// The first entry containing a date wins.
type FestivalCalendar interface {
	Entries() []domain.FestivalEntry
}
