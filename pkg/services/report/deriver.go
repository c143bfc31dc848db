package report

import (
	"time"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// Deriver turns one aggregate row into a derived row by adding the
// domain's classification fields. Derivation reads only the row itself
// and the injected clock; it never touches the store, so rows can be
// derived independently and in any order.
type Deriver interface {
	Derive(row store.AggregateRow) domain.DerivedRow
}

// DeriverFor selects the deriver implementation for a domain. The clock
// feeds the relative-time classifications (days in process, client
// activity); tests inject a fixed one.
func DeriverFor(d domain.Domain, now func() time.Time) (Deriver, bool) {
	if now == nil {
		now = time.Now
	}
	switch d {
	case domain.DomainQuotes:
		return &quotesDeriver{now: now}, true
	case domain.DomainProducts:
		return &productsDeriver{}, true
	case domain.DomainClients:
		return &clientsDeriver{now: now}, true
	case domain.DomainSales:
		return &salesDeriver{}, true
	}
	return nil, false
}

// cloneRow copies the aggregate row so derivation never mutates its
// input.
func cloneRow(row store.AggregateRow) domain.DerivedRow {
	out := make(domain.DerivedRow, len(row)+4)
	for k, v := range row {
		out[k] = v
	}
	return out
}
