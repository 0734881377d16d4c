package adapters

import (
	"time"

	"remedy-engine/internal/features/rules/domain"
)

// StaticTables serves the compensation, peak-hour and festival lookup tables
// from fixed in-memory data built at construction. It satisfies all three
// rule table ports.
type StaticTables struct {
	baseAmounts map[domain.CustomerTier]domain.Paise
	peakHours   map[string]domain.PeakWindow
	defaultPeak domain.PeakWindow
	festivals   []domain.FestivalEntry
}

// NewStaticTables builds the Indian-market rule tables.
func NewStaticTables() *StaticTables {
	return &StaticTables{
		baseAmounts: map[domain.CustomerTier]domain.Paise{
			domain.TierStandard:   3000,
			domain.TierPremium:    5000,
			domain.TierVIP:        10000,
			domain.TierEnterprise: 15000,
		},
		peakHours: map[string]domain.PeakWindow{
			"mumbai":    {"12:00-14:00", "19:00-22:00"},
			"delhi":     {"12:30-14:30", "19:30-22:30"},
			"bangalore": {"12:00-14:00", "19:00-21:30"},
			"hyderabad": {"12:30-14:00", "19:30-22:00"},
			"chennai":   {"12:00-14:30", "19:00-21:30"},
			"kolkata":   {"12:30-14:30", "19:00-21:30"},
			"pune":      {"12:00-14:00", "19:00-22:00"},
		},
		defaultPeak: domain.PeakWindow{"12:00-14:00", "19:00-22:00"},
		festivals: []domain.FestivalEntry{
			{
				Name:   "diwali",
				Start:  day(2024, time.November, 1),
				End:    day(2024, time.November, 5),
				Impact: domain.ImpactHigh,
				Adjustments: []string{
					"add surge capacity for gift deliveries",
					"extend evening delivery windows",
					"expect firecracker road closures in residential areas",
				},
			},
			{
				Name:   "holi",
				Start:  day(2024, time.March, 8),
				End:    day(2024, time.March, 9),
				Impact: domain.ImpactMedium,
				Adjustments: []string{
					"protect packages against color powder and water",
					"avoid celebration zones on morning routes",
				},
			},
			{
				Name:   "eid",
				Start:  day(2024, time.April, 10),
				End:    day(2024, time.April, 11),
				Impact: domain.ImpactMedium,
				Adjustments: []string{
					"plan around congested market areas",
					"expect elevated food delivery volume after sunset",
				},
			},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// BaseAmount implements ports.CompensationTable.
func (t *StaticTables) BaseAmount(tier domain.CustomerTier) (domain.Paise, bool) {
	amount, ok := t.baseAmounts[tier]
	return amount, ok
}

// Windows implements ports.PeakHourTable.
func (t *StaticTables) Windows(city string) (domain.PeakWindow, bool) {
	w, ok := t.peakHours[city]
	return w, ok
}

// Default implements ports.PeakHourTable.
func (t *StaticTables) Default() domain.PeakWindow {
	return t.defaultPeak
}

// Entries implements ports.FestivalCalendar.
func (t *StaticTables) Entries() []domain.FestivalEntry {
	return t.festivals
}
