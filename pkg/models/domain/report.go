package domain

// Domain identifies a report subject area. The set is fixed at compile
// time; every Domain selects its own field catalog, metric deriver and
// aggregate query.
type Domain string

const (
	DomainQuotes   Domain = "quotes"
	DomainProducts Domain = "products"
	DomainClients  Domain = "clients"
	DomainSales    Domain = "sales"
)

// Domains lists the supported report domains in a stable order.
func Domains() []Domain {
	return []Domain{DomainQuotes, DomainProducts, DomainClients, DomainSales}
}

// ParseDomain maps a caller-supplied report type to a Domain.
func ParseDomain(s string) (Domain, bool) {
	switch Domain(s) {
	case DomainQuotes, DomainProducts, DomainClients, DomainSales:
		return Domain(s), true
	}
	return "", false
}

// Mode selects between an interactive, row-capped preview and a full
// tabular export.
type Mode string

const (
	ModePreview Mode = "preview"
	ModeExport  Mode = "export"
)

// DateRange bounds a report by its domain's date column. Both bounds are
// optional YYYY-MM-DD strings; when both are present From must not be
// after To.
type DateRange struct {
	From string
	To   string
}

// ReportRequest carries everything the assembler needs for one run.
// It is built once per request and passed down the call chain; no report
// state lives anywhere else.
type ReportRequest struct {
	Domain Domain
	// Fields holds the requested virtual-field tokens ("table.column"),
	// in the column order the caller wants.
	Fields []string
	Range  DateRange
	Mode   Mode
	// Limit caps export rows when > 0. Ignored in preview mode, where
	// the fixed preview cap always applies.
	Limit int
}

// Field is a resolved virtual field: the caller token, the data key the
// aggregate row stores the value under, and the human header label.
type Field struct {
	Token       string
	DataKey     string
	DisplayName string
}

// DerivedRow is an aggregate row augmented with the domain's computed
// classification fields (tiers, statuses, rates). Derivation is a pure
// function of the row; the result is read-only afterwards.
type DerivedRow map[string]any

// ReportResult is the assembled report: headers and formatted cells in
// the caller's selection order, restricted to resolved fields.
type ReportResult struct {
	Domain       Domain
	Headers      []string
	Rows         [][]string
	TotalRecords int
}
