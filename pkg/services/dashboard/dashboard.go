package dashboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
	storesqlite "github.com/crm-tools/quote-atlas/pkg/store/sqlite/report"
)

// Service produces the landing-screen summary: entity counters plus the
// month-over-month sales growth trend.
type Service interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type service struct {
	store storesqlite.Store
}

func NewService(store storesqlite.Store) Service {
	return &service{store: store}
}

func (s *service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	counts, err := s.store.EntityCounts(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("dashboard counts query failed")
		return nil, report.ErrStore
	}

	totals, err := s.store.SalesTrendTotals(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("sales trend query failed")
		return nil, report.ErrStore
	}

	return &domain.DashboardSummary{
		Clients:        counts.Clients,
		Products:       counts.Products,
		Quotes:         counts.Quotes,
		ApprovedQuotes: counts.ApprovedQuotes,
		Trend: domain.SalesTrend{
			CurrentTotal:  totals.CurrentTotal,
			PreviousTotal: totals.PreviousTotal,
			GrowthPercent: report.Growth(totals.CurrentTotal, totals.PreviousTotal),
		},
	}, nil
}
