package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)

// TestParseRelativeTime covers various valid and invalid cases.
func TestParseRelativeTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		// Valid tests: Ensure units and casing are parsed correctly relative to fixedNow
		{
			name:     "valid plural months (mixed case)",
			input:    "3 MoNtHs AgO",
			expected: fixedNow.AddDate(0, -3, 0),
		},
		{
			name:     "valid singular week (capitalized)",
			input:    "1 Week Ago",
			expected: fixedNow.Add(-7 * 24 * time.Hour),
		},
		{
			name:     "valid 10 days (upper case)",
			input:    "10 DAYS AGO",
			expected: fixedNow.Add(-10 * 24 * time.Hour),
		},
		{
			name:     "valid 30 minutes",
			input:    "30 minutes ago",
			expected: fixedNow.Add(-30 * time.Minute),
		},
		{
			name:     "valid 2 years",
			input:    "2 years ago",
			expected: fixedNow.AddDate(-2, 0, 0),
		},
		// Invalid tests: Ensure only supported formats/units are accepted
		{
			name:        "invalid missing ago",
			input:       "2 years",
			expectError: true,
		},
		{
			name:        "invalid bad unit (decades)",
			input:       "4 decades ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one year ago",
			expectError: true,
		},
		{
			name:        "invalid empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseRelativeTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result, "Parsed time mismatch")
			}
		})
	}
}

// TestParseCadence covers Go duration syntax and human-readable forms.
func TestParseCadence(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{name: "go syntax minutes", input: "10m", expected: 10 * time.Minute},
		{name: "go syntax compound", input: "1h30m", expected: 90 * time.Minute},
		{name: "human plural minutes", input: "10 minutes", expected: 10 * time.Minute},
		{name: "human singular hour", input: "1 hour", expected: time.Hour},
		{name: "human days", input: "2 days", expected: 48 * time.Hour},
		{name: "human seconds with casing", input: "30 SECONDS", expected: 30 * time.Second},
		{name: "invalid negative go duration", input: "-10m", expectError: true},
		{name: "invalid zero value", input: "0 minutes", expectError: true},
		{name: "invalid unit", input: "3 fortnights", expectError: true},
		{name: "invalid empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCadence(tt.input)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
