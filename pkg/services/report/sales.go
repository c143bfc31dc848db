package report

import (
	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// Estimated margin applied to approved sales.
const profitMargin = 0.30

// salesDeriver classifies approved quotes; its input rows are already
// filtered to status = 3 by the aggregate query.
type salesDeriver struct{}

func (d *salesDeriver) Derive(row store.AggregateRow) domain.DerivedRow {
	out := cloneRow(row)

	discount, _ := asFloat(row["discount_percent"])
	out["discount_category"] = discountCategory(discount)

	total, _ := asFloat(row["total_amount"])
	out["sale_category"] = saleCategory(total)
	out["estimated_profit"] = round2(total * profitMargin)

	quoteDate, hasQuoteDate := parseDate(row["quote_date"])
	if created, ok := parseDate(row["created_at"]); ok && hasQuoteDate {
		out["days_to_close"] = daysBetween(quoteDate, created)
	} else {
		out["days_to_close"] = int64(0)
	}

	validUntil, hasValidUntil := parseDate(row["valid_until"])
	if hasQuoteDate && hasValidUntil && quoteDate.After(validUntil) {
		out["timing_status"] = "Aprobada fuera de plazo"
	} else {
		out["timing_status"] = "Aprobada en tiempo"
	}

	return out
}

func discountCategory(discount float64) string {
	switch {
	case discount == 0:
		return "Sin descuento"
	case discount <= 5:
		return "bajo"
	case discount <= 15:
		return "moderado"
	default:
		return "alto"
	}
}

func saleCategory(total float64) string {
	switch {
	case total < 100:
		return "Venta pequeña"
	case total < 1000:
		return "Venta mediana"
	case total < 5000:
		return "Venta grande"
	default:
		return "Venta premium"
	}
}
