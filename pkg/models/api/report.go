package api

// ReportRequest is the JSON payload for preview and export calls.
type ReportRequest struct {
	Fields []string `json:"fields"`
	From   string   `json:"date_from,omitempty"`
	To     string   `json:"date_to,omitempty"`
	Limit  int      `json:"limit,omitempty"`
}

// ReportPreview is the interactive preview response.
type ReportPreview struct {
	Success      bool       `json:"success"`
	Data         [][]string `json:"data"`
	Headers      []string   `json:"headers"`
	TotalRecords int        `json:"total_records"`
}

// ReportError is returned when a report request fails validation or the
// store call fails. Messages are human-readable; internals never leak.
type ReportError struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// CatalogField describes one selectable virtual field of a domain.
type CatalogField struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
}

// Catalog lists the selectable fields for a report domain.
type Catalog struct {
	Domain string         `json:"domain"`
	Fields []CatalogField `json:"fields"`
}

// Dashboard is the landing-screen summary.
type Dashboard struct {
	Clients        int64      `json:"clients"`
	Products       int64      `json:"products"`
	Quotes         int64      `json:"quotes"`
	ApprovedQuotes int64      `json:"approved_quotes"`
	Trend          SalesTrend `json:"sales_trend"`
}

// SalesTrend is the month-over-month growth block of the dashboard.
type SalesTrend struct {
	CurrentTotal  float64 `json:"current_total"`
	PreviousTotal float64 `json:"previous_total"`
	GrowthPercent float64 `json:"growth_percent"`
}
