//go:build unit

package money_test

import (
	"math"
	"testing"

	"rental-marketplace/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name      string
		in        float64
		wantCents int64
		wantStr   string
		errIs     error
	}{
		{name: "whole amount", in: 1200, wantCents: 120000, wantStr: "1200.00"},
		{name: "rounds to cents", in: 912.499, wantCents: 91250, wantStr: "912.50"},
		{name: "float artifacts", in: 0.1 + 0.2, wantCents: 30, wantStr: "0.30"},
		{name: "one cent", in: 0.01, wantCents: 1, wantStr: "0.01"},
		{name: "rounds to zero", in: 0.004, errIs: money.ErrNotPositive},
		{name: "zero", in: 0, errIs: money.ErrNotPositive},
		{name: "negative", in: -3, errIs: money.ErrNotPositive},
		{name: "NaN", in: math.NaN(), errIs: money.ErrNotPositive},
		{name: "infinity", in: math.Inf(1), errIs: money.ErrNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.FromFloat(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, m.Cents())
			assert.Equal(t, tt.wantStr, m.String())
			assert.InDelta(t, float64(tt.wantCents)/100, m.Float64(), 1e-9)
		})
	}
}
