package domain

import "errors"

// CustomerTier classifies a customer account and sizes the base compensation.
type CustomerTier string

const (
	TierStandard   CustomerTier = "standard"
	TierPremium    CustomerTier = "premium"
	TierVIP        CustomerTier = "vip"
	TierEnterprise CustomerTier = "enterprise"
)

// Valid reports whether the tier is one of the defined values.
func (t CustomerTier) Valid() bool {
	switch t {
	case TierStandard, TierPremium, TierVIP, TierEnterprise:
		return true
	}
	return false
}

// CompensationType is the kind of remediation issued for a service failure.
type CompensationType string

const (
	CompensationVoucher      CompensationType = "voucher"
	CompensationRefund       CompensationType = "refund"
	CompensationCredit       CompensationType = "credit"
	CompensationFreeDelivery CompensationType = "free_delivery"
	CompensationUpgrade      CompensationType = "upgrade"
)

// OfferValidDays is how long an issued compensation offer stays redeemable.
const OfferValidDays = 30

var (
	// ErrInvalidTier is returned when the customer tier is not a defined value.
	ErrInvalidTier = errors.New("invalid customer tier")
	// ErrInvalidDelay is returned when the delay is negative.
	ErrInvalidDelay = errors.New("delay minutes must not be negative")
	// ErrInvalidOrderValue is returned when the order value is negative.
	ErrInvalidOrderValue = errors.New("order value must not be negative")
)

// CompensationOffer is a structured remediation issued for a delivery failure.
// Offers are created fresh per calculation and never mutated afterwards.
type CompensationOffer struct {
	// Type is the kind of remediation. Only vouchers are produced today.
	Type CompensationType `json:"type"`
	// AmountPaise is the compensation amount in INR minor units.
	AmountPaise Paise `json:"amount_paise"`
	// Currency is the ISO code of the amount. Fixed to INR for this market.
	Currency string `json:"currency"`
	// Message is the customer-facing text, embedding the formatted amount.
	Message string `json:"message"`
	// ValidDays is the redemption window in days.
	ValidDays int `json:"valid_days"`
}

// PeakWindow is an ordered pair of "HH:MM-HH:MM" demand windows
// (lunch peak first, dinner peak second).
type PeakWindow [2]string
