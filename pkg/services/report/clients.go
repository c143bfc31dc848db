package report

import (
	"time"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

type clientsDeriver struct {
	now func() time.Time
}

func (d *clientsDeriver) Derive(row store.AggregateRow) domain.DerivedRow {
	out := cloneRow(row)

	totalQuotes, _ := asFloat(row["total_quotes"])
	approved, _ := asFloat(row["approved_quotes"])
	if totalQuotes > 0 {
		out["conversion_rate"] = round2(approved / totalQuotes * 100)
	} else {
		out["conversion_rate"] = float64(0)
	}

	totalSales, _ := asFloat(row["total_sales_value"])
	out["customer_tier"] = customerTier(totalSales)

	out["activity_status"] = d.activityStatus(row["last_quote_date"])

	return out
}

// customerTier buckets a client by accumulated approved-quote value.
// Boundaries are strict: exactly 10000 is Premium, not VIP.
func customerTier(totalSales float64) string {
	switch {
	case totalSales > 10000:
		return "VIP"
	case totalSales > 5000:
		return "Premium"
	case totalSales > 1000:
		return "Regular"
	case totalSales > 0:
		return "Básico"
	default:
		return "Prospecto"
	}
}

// activityStatus classifies a client by the age of their most recent
// quote. Clients with no quote history at all are "Sin Actividad".
func (d *clientsDeriver) activityStatus(lastQuote any) string {
	last, ok := parseDate(lastQuote)
	if !ok {
		return "Sin Actividad"
	}
	days := daysBetween(d.now(), last)
	switch {
	case days <= 30:
		return "Muy Activo"
	case days <= 90:
		return "Activo"
	case days <= 180:
		return "Poco Activo"
	default:
		return "Inactivo"
	}
}
