package services

import (
	"errors"
	"testing"
)

func TestConvertOffset(t *testing.T) {
	const toronto = -5 * 3600

	tests := []struct {
		name      string
		timestamp string
		caller    int
		reference int
		want      string
	}{
		{"positive caller adds both magnitudes", "2018-01-02 21:30:00", 3600, toronto, "2018-01-03 03:30:00"},
		{"GMT caller", "2018-01-02 21:30:00", 0, toronto, "2018-01-03 02:30:00"},
		{"negative caller subtracts the gap", "2018-01-02 21:30:00", -8 * 3600, toronto, "2018-01-02 18:30:00"},
		{"equal negative offsets leave the time alone", "2020-10-20 21:30:00", -4 * 3600, -4 * 3600, "2020-10-20 21:30:00"},
		{"both zero leave the time alone", "2020-10-20 21:30:00", 0, 0, "2020-10-20 21:30:00"},
		{"half-hour caller", "2018-01-02 21:30:00", 19800, toronto, "2018-01-03 08:00:00"},
		{"crosses month and year", "2017-12-31 21:30:00", 14400, toronto, "2018-01-01 06:30:00"},
		// |caller| < |reference| with a negative caller keeps the literal policy.
		{"negative caller east of reference", "2018-01-02 21:30:00", -3 * 3600, toronto, "2018-01-02 19:30:00"},
		{"equal positive offsets add twice", "2018-01-02 21:30:00", 3600, 3600, "2018-01-02 23:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertOffset(tt.timestamp, tt.caller, tt.reference)
			if err != nil {
				t.Fatalf("Expected no error, but got %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertOffset(%q, %d, %d) = %q, want %q", tt.timestamp, tt.caller, tt.reference, got, tt.want)
			}
		})
	}
}

func TestConvertOffset_MalformedTimestamp(t *testing.T) {
	_, err := ConvertOffset("2018-01-02T21:30:00Z", 0, 0)
	var dpe *DateParseError
	if !errors.As(err, &dpe) {
		t.Fatalf("Expected *DateParseError, but got %T: %v", err, err)
	}
}
