package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateDealCode builds a deal code like DL-2025-3F7A2C. The suffix comes
// from a fresh UUID so codes are collision-resistant without a sequence
// table; the unique index on project_deal_code is the final arbiter.
func GenerateDealCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("DL-%d-%s", now.Year(), suffix)
}

// ClampProgress bounds a stage progress value to 0..100.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
