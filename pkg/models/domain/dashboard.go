package domain

// DashboardSummary collects the entity counters and the month-over-month
// sales trend shown on the landing screen.
type DashboardSummary struct {
	Clients        int64
	Products       int64
	Quotes         int64
	ApprovedQuotes int64
	Trend          SalesTrend
}

// SalesTrend compares the current period's sales total against the
// previous one. Growth is a percentage on a 0-100 scale; a zero previous
// total reports flat growth.
type SalesTrend struct {
	CurrentTotal  float64
	PreviousTotal float64
	GrowthPercent float64
}
