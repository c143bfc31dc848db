package report

import (
	"time"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// Quote status codes as stored in the quotes table.
const (
	StatusDraft    = 1
	StatusSent     = 2
	StatusApproved = 3
	StatusRejected = 4
	StatusExpired  = 5
	StatusCanceled = 6
)

var quoteStatusNames = map[int64]string{
	StatusDraft:    "Borrador",
	StatusSent:     "Enviada",
	StatusApproved: "Aprobada",
	StatusRejected: "Rechazada",
	StatusExpired:  "Vencida",
	StatusCanceled: "Cancelada",
}

// QuoteStatusName maps a status code to its display name; unknown codes
// map to "Desconocido".
func QuoteStatusName(code int64) string {
	if name, ok := quoteStatusNames[code]; ok {
		return name
	}
	return "Desconocido"
}

type quotesDeriver struct {
	now func() time.Time
}

func (d *quotesDeriver) Derive(row store.AggregateRow) domain.DerivedRow {
	out := cloneRow(row)

	status, _ := asInt(row["status"])
	out["status_name"] = QuoteStatusName(status)

	quoteDate, hasQuoteDate := parseDate(row["quote_date"])
	validUntil, hasValidUntil := parseDate(row["valid_until"])
	switch {
	case hasQuoteDate && hasValidUntil && quoteDate.After(validUntil):
		out["timing_status"] = "Fuera de plazo"
	case status == StatusExpired:
		out["timing_status"] = "Vencida"
	case status == StatusApproved:
		out["timing_status"] = "Cerrada exitosamente"
	default:
		out["timing_status"] = "En proceso"
	}

	// Time in process runs from creation until the last update, or until
	// now for quotes never updated.
	reference := d.now()
	if updated, ok := parseDate(row["updated_at"]); ok {
		reference = updated
	}
	if created, ok := parseDate(row["created_at"]); ok {
		out["days_in_process"] = daysBetween(reference, created)
	} else {
		out["days_in_process"] = int64(0)
	}

	return out
}
