package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid v4", "8f14e45f-ceea-467f-8c5e-8d2f3a1b4c6d", true},
		{"valid v7", "0189f5a8-3c7d-7b9a-8f2e-1a2b3c4d5e6f", true},
		{"uppercase accepted", "8F14E45F-CEEA-467F-8C5E-8D2F3A1B4C6D", true},
		{"missing dashes", "8f14e45fceea467f8c5e8d2f3a1b4c6d", false},
		{"too short", "8f14e45f-ceea-467f-8c5e", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUUID(tt.input))
		})
	}
}

func TestIsValidMonthYear(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))

	assert.True(t, IsValidYear(2025))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(2101))
}
