package tukin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompensate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		minutesLate     int
		departureDelta  int
		wantCompensated int
		wantResidual    int
	}{
		// 60 late: compensable 30, required overtime 60.
		{"full compensation", 60, 60, 30, 0},
		{"over-compensation still waives fully", 60, 120, 30, 0},
		{"no overtime keeps full penalty", 60, 0, 0, 30},
		{"half overtime halves penalty", 60, 30, 15, 15},
		// 90 late: compensable 60, required 120.
		{"upper compensable edge fully offset", 90, 120, 60, 0},
		{"quarter overtime", 90, 30, 15, 45},
		// Pro-rata rounding: 20 * (1 - 15/40) = 12.5 rounds to 13.
		{"rounded residual", 50, 15, 7, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compensated, residual := Compensate(tt.minutesLate, tt.departureDelta)
			assert.Equal(t, tt.wantCompensated, compensated, "compensated")
			assert.Equal(t, tt.wantResidual, residual, "residual")
		})
	}
}

func TestCompensate_IneligibleBrackets(t *testing.T) {
	t.Parallel()

	// NONE and TOLERATED never reach the calculator; UNCOMPENSABLE is never
	// eligible regardless of overtime.
	for _, minutes := range []int{0, 10, 30, 91, 240} {
		compensated, residual := Compensate(minutes, 500)
		assert.Zero(t, compensated, "minutes=%d", minutes)
		assert.Zero(t, residual, "minutes=%d", minutes)
	}
}

func TestCompensate_ConservesCompensableMinutes(t *testing.T) {
	t.Parallel()

	// compensated + residual always equals the compensable portion.
	for minutes := 31; minutes <= 90; minutes++ {
		for delta := 0; delta <= 150; delta += 7 {
			compensated, residual := Compensate(minutes, delta)
			assert.Equal(t, minutes-30, compensated+residual,
				"minutes=%d delta=%d", minutes, delta)
			assert.GreaterOrEqual(t, residual, 0)
		}
	}
}
