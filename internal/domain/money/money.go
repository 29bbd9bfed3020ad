package money

import (
	"fmt"
	"math"

	"rental-marketplace/internal/pkg/errs"
)

var ErrNotPositive = errs.Sentinel("Amount must be positive", errs.ErrValidation)

// Money is an amount in cents. Only positive amounts are representable.
type Money struct {
	cents int64
}

func FromFloat(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{}, ErrNotPositive
	}
	return FromCents(int64(math.Round(v * 100)))
}

func FromCents(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrNotPositive
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Float64() float64 { return float64(m.cents) / 100 }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
