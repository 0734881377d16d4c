package domain

import "fmt"

// Paise is a monetary amount in INR minor units (1 rupee = 100 paise).
// Compensation math is done in integer paise so repeated multiplier and
// cap operations never lose cents to floating point.
type Paise int64

// PaiseFromRupees converts a rupee amount to paise, rounding to the nearest paisa.
func PaiseFromRupees(rupees float64) Paise {
	if rupees >= 0 {
		return Paise(rupees*100 + 0.5)
	}
	return Paise(rupees*100 - 0.5)
}

// Rupees returns the amount in rupees.
func (p Paise) Rupees() float64 {
	return float64(p) / 100
}

// String formats the amount as a rupee string, e.g. "₹75.00".
func (p Paise) String() string {
	sign := ""
	v := p
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, v/100, v%100)
}
