package service

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateDealCode(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^DL-2025-[0-9A-F]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateDealCode(now)
		if !re.MatchString(code) {
			t.Fatalf("deal code %q does not match expected format", code)
		}
		if seen[code] {
			t.Fatalf("duplicate deal code generated: %q", code)
		}
		seen[code] = true
	}
}

func TestClampProgress(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{250, 100},
	}
	for _, tc := range cases {
		if got := ClampProgress(tc.in); got != tc.want {
			t.Errorf("ClampProgress(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
