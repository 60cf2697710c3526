package service

// Threshold levels for budget consumption. Derived on read, never stored.
const (
	ThresholdOK       = "ok"
	ThresholdWarning  = "warning"
	ThresholdCritical = "critical"
)

const (
	warningPercent  = 70
	criticalPercent = 90
)

// SpendPercent returns spent/total×100. Total unset or zero yields 0 so the
// threshold endpoint never divides by zero.
func SpendPercent(totalBudget, spent float64) float64 {
	if totalBudget <= 0 {
		return 0
	}
	return spent / totalBudget * 100
}

// ThresholdLevel maps a spend percentage to ok / warning / critical.
// <70 ok, 70–89.99 warning, >=90 critical.
func ThresholdLevel(percent float64) string {
	switch {
	case percent >= criticalPercent:
		return ThresholdCritical
	case percent >= warningPercent:
		return ThresholdWarning
	default:
		return ThresholdOK
	}
}
