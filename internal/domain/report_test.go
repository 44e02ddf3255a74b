package domain

import (
	"testing"
	"time"
)

func TestCutoffComparesDatesOnly(t *testing.T) {
	cutoff := NewCutoff(2025, time.January, 1)

	cases := []struct {
		name     string
		modified time.Time
		want     bool
	}{
		{"day before, late evening", time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), true},
		{"same day, midnight", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), false},
		{"same day, noon", time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), false},
		{"day after", time.Date(2025, 1, 2, 0, 0, 1, 0, time.Local), false},
		{"much older", time.Date(2019, 6, 15, 10, 0, 0, 0, time.Local), true},
	}

	for _, tc := range cases {
		if got := cutoff.Includes(tc.modified); got != tc.want {
			t.Errorf("%s: Includes(%v) = %v, want %v", tc.name, tc.modified, got, tc.want)
		}
	}
}

func TestCutoffString(t *testing.T) {
	cutoff := NewCutoff(2025, time.November, 25)
	if cutoff.String() != "2025-11-25" {
		t.Fatalf("unexpected cutoff string %q", cutoff.String())
	}
}

func TestCutoffFromTimeDropsClock(t *testing.T) {
	cutoff := CutoffFromTime(time.Date(2025, 1, 1, 18, 45, 12, 0, time.Local))
	if cutoff.Includes(time.Date(2025, 1, 1, 1, 0, 0, 0, time.Local)) {
		t.Fatal("same calendar day must not be included")
	}
	if !cutoff.Includes(time.Date(2024, 12, 31, 18, 45, 12, 0, time.Local)) {
		t.Fatal("previous day must be included")
	}
}

func TestScanResultTotalBytes(t *testing.T) {
	result := ScanResult{
		Items: []MediaItem{
			{SizeBytes: 100},
			{SizeBytes: 0},
			{SizeBytes: 900},
		},
	}
	if got := result.TotalBytes(); got != 1000 {
		t.Fatalf("TotalBytes() = %d, want 1000", got)
	}
}
