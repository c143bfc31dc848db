package report

// Growth returns the month-over-month growth percentage for a metric.
// A zero (or negative) previous baseline reports flat 0% growth rather
// than an undefined or infinite value.
func Growth(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return round2((current - previous) / previous * 100)
}
