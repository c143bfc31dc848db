package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// previewRowCap bounds interactive previews. TotalRecords reports the
// materialized rows, not the true matching count, so a capped preview
// never exceeds this number.
const previewRowCap = 5

// Store is the external collaborator that runs the per-domain aggregate
// query. The date range bounds the domain's date column; sales rows come
// back pre-filtered to approved quotes.
type Store interface {
	Aggregate(ctx context.Context, d domain.Domain, r domain.DateRange) ([]store.AggregateRow, error)
}

// Service is the report engine surface consumed by transports.
type Service interface {
	Assemble(ctx context.Context, req domain.ReportRequest) (*domain.ReportResult, error)
	Catalog(d domain.Domain) ([]domain.Field, error)
}

type assembler struct {
	store Store
	now   func() time.Time
}

// NewAssembler builds the report service on top of a store collaborator.
// The clock is injectable for deterministic derivation tests; pass nil
// for the wall clock.
func NewAssembler(st Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &assembler{store: st, now: now}
}

// Assemble runs one report request end to end: validate, query, derive,
// resolve, format. Validation failures abort before any store access.
func (a *assembler) Assemble(ctx context.Context, req domain.ReportRequest) (*domain.ReportResult, error) {
	if len(req.Fields) == 0 {
		return nil, ErrEmptySelection
	}

	deriver, ok := DeriverFor(req.Domain, a.now)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, req.Domain)
	}

	if msgs := ValidateDateRange(req.Range); len(msgs) > 0 {
		return nil, &DateRangeError{Messages: msgs}
	}

	rows, err := a.store.Aggregate(ctx, req.Domain, req.Range)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("domain", string(req.Domain)).
			Msg("aggregate query failed")
		return nil, ErrStore
	}

	limit := rowLimit(req, len(rows))
	if len(rows) > limit {
		rows = rows[:limit]
	}

	// Headers are resolved once; unresolved tokens drop out of both the
	// headers and every row.
	fields := ResolveFields(req.Domain, req.Fields)

	result := &domain.ReportResult{
		Domain:  req.Domain,
		Headers: make([]string, len(fields)),
		Rows:    make([][]string, 0, len(rows)),
	}
	for i, f := range fields {
		result.Headers[i] = f.DisplayName
	}

	for _, row := range rows {
		derived := deriver.Derive(row)
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = FormatValue(f.Token, derived[f.DataKey])
		}
		result.Rows = append(result.Rows, cells)
	}
	result.TotalRecords = len(result.Rows)

	return result, nil
}

// Catalog lists the selectable fields of a domain.
func (a *assembler) Catalog(d domain.Domain) ([]domain.Field, error) {
	if _, ok := domain.ParseDomain(string(d)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
	return CatalogFields(d), nil
}

func rowLimit(req domain.ReportRequest, available int) int {
	if req.Mode == domain.ModePreview {
		return previewRowCap
	}
	if req.Limit > 0 {
		return req.Limit
	}
	return available
}
