package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRangeDays(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"7d", 7},
		{"30d", 30},
		{"90", 90},
		{"", DefaultRangeDays},
		{"abc", DefaultRangeDays},
		{"d", DefaultRangeDays},
		{"0d", DefaultRangeDays},
		{"-5d", DefaultRangeDays},
		{"7dd", DefaultRangeDays},
		{" 14D ", 14},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRangeDays(tt.input))
		})
	}
}

func TestLookbackWindow(t *testing.T) {
	// 23h em São Paulo já é o dia seguinte em UTC
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)

	start, end := LookbackWindow(now, 7)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)

	start, end = LookbackWindow(now, 1)
	assert.Equal(t, start, end)

	start, end = LookbackWindow(now, 0)
	assert.Equal(t, start, end)
}
