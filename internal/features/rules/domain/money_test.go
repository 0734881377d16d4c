package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaiseFromRupees(t *testing.T) {
	assert.Equal(t, Paise(100000), PaiseFromRupees(1000))
	assert.Equal(t, Paise(99999), PaiseFromRupees(999.99))
	assert.Equal(t, Paise(1), PaiseFromRupees(0.01))
	assert.Equal(t, Paise(0), PaiseFromRupees(0))
	assert.Equal(t, Paise(-250), PaiseFromRupees(-2.50))
}

func TestPaise_Rupees(t *testing.T) {
	assert.InDelta(t, 75.0, Paise(7500).Rupees(), 1e-9)
	assert.InDelta(t, 0.2, Paise(20).Rupees(), 1e-9)
}

func TestPaise_String(t *testing.T) {
	assert.Equal(t, "₹75.00", Paise(7500).String())
	assert.Equal(t, "₹0.00", Paise(0).String())
	assert.Equal(t, "₹1.05", Paise(105).String())
	assert.Equal(t, "-₹2.50", Paise(-250).String())
}
