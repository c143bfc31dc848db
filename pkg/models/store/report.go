package store

// AggregateRow is one row of pre-aggregated data returned by a domain's
// report query, keyed by data key. Values are whatever the driver
// produced: string, int64, float64 or nil. Rows are request-scoped and
// never persisted.
type AggregateRow map[string]any

// TrendTotals holds the pre-aggregated sales totals for two adjacent
// periods, used for month-over-month growth.
type TrendTotals struct {
	CurrentTotal  float64
	PreviousTotal float64
}

// EntityCounts carries the dashboard counters.
type EntityCounts struct {
	Clients        int64
	Products       int64
	Quotes         int64
	ApprovedQuotes int64
}
