package service

import "testing"

func TestThresholdLevel(t *testing.T) {
	cases := []struct {
		name    string
		percent float64
		want    string
	}{
		{"zero", 0, ThresholdOK},
		{"just under warning", 69.99, ThresholdOK},
		{"warning lower bound", 70, ThresholdWarning},
		{"inside warning band", 89.99, ThresholdWarning},
		{"critical lower bound", 90, ThresholdCritical},
		{"over budget", 150, ThresholdCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ThresholdLevel(tc.percent); got != tc.want {
				t.Errorf("ThresholdLevel(%v) = %q, want %q", tc.percent, got, tc.want)
			}
		})
	}
}

func TestThresholdLevelMonotonic(t *testing.T) {
	rank := map[string]int{ThresholdOK: 0, ThresholdWarning: 1, ThresholdCritical: 2}
	prev := -1
	for p := 0.0; p <= 120; p += 0.5 {
		got := rank[ThresholdLevel(p)]
		if got < prev {
			t.Fatalf("level decreased at percent=%v", p)
		}
		prev = got
	}
}

func TestSpendPercent(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		spent float64
		want  float64
	}{
		{"zero total is safe", 0, 500, 0},
		{"negative total is safe", -1, 500, 0},
		{"no spend", 1000, 0, 0},
		{"three 300k spends on 1m", 1_000_000, 900_000, 90},
		{"half", 200, 100, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpendPercent(tc.total, tc.spent); got != tc.want {
				t.Errorf("SpendPercent(%v, %v) = %v, want %v", tc.total, tc.spent, got, tc.want)
			}
		})
	}
}

// Scenario from the product sheet: 1,000,000 total with three approved
// 300,000 spends lands exactly on the critical boundary.
func TestThresholdScenarioCriticalBoundary(t *testing.T) {
	percent := SpendPercent(1_000_000, 3*300_000)
	if percent != 90 {
		t.Fatalf("percent = %v, want 90", percent)
	}
	if level := ThresholdLevel(percent); level != ThresholdCritical {
		t.Fatalf("level = %q, want %q", level, ThresholdCritical)
	}
}
