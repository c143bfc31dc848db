package report

import (
	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// Stock thresholds, checked in order: a stock of exactly 5 is crítico,
// exactly 10 is bajo.
const (
	stockCritical = 5
	stockLow      = 10
)

type productsDeriver struct{}

func (d *productsDeriver) Derive(row store.AggregateRow) domain.DerivedRow {
	out := cloneRow(row)

	basePrice, _ := asFloat(row["base_price"])
	taxRate, _ := asFloat(row["tax_rate"])
	out["final_price"] = round2(basePrice * (1 + taxRate/100))

	out["stock_status"] = stockStatus(row["stock"])

	return out
}

// stockStatus classifies the stock level. A null stock means the product
// does not track inventory at all.
func stockStatus(raw any) string {
	stock, ok := asInt(raw)
	if raw == nil || !ok {
		return "No aplica"
	}
	switch {
	case stock <= stockCritical:
		return "Stock crítico"
	case stock <= stockLow:
		return "Stock bajo"
	default:
		return "Stock normal"
	}
}
