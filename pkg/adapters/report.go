package adapters

import (
	"github.com/crm-tools/quote-atlas/pkg/models/api"
	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

func MapReportResultDomainToApi(result *domain.ReportResult) api.ReportPreview {
	return api.ReportPreview{
		Success:      true,
		Data:         result.Rows,
		Headers:      result.Headers,
		TotalRecords: result.TotalRecords,
	}
}

func MapCatalogDomainToApi(d domain.Domain, fields []domain.Field) api.Catalog {
	catalog := api.Catalog{
		Domain: string(d),
		Fields: make([]api.CatalogField, 0, len(fields)),
	}
	for _, f := range fields {
		catalog.Fields = append(catalog.Fields, api.CatalogField{
			Token:       f.Token,
			DisplayName: f.DisplayName,
		})
	}
	return catalog
}

func MapDashboardDomainToApi(summary *domain.DashboardSummary) api.Dashboard {
	return api.Dashboard{
		Clients:        summary.Clients,
		Products:       summary.Products,
		Quotes:         summary.Quotes,
		ApprovedQuotes: summary.ApprovedQuotes,
		Trend: api.SalesTrend{
			CurrentTotal:  summary.Trend.CurrentTotal,
			PreviousTotal: summary.Trend.PreviousTotal,
			GrowthPercent: summary.Trend.GrowthPercent,
		},
	}
}

func MapApiRequestToDomain(d domain.Domain, req api.ReportRequest, mode domain.Mode) domain.ReportRequest {
	return domain.ReportRequest{
		Domain: d,
		Fields: req.Fields,
		Range:  domain.DateRange{From: req.From, To: req.To},
		Mode:   mode,
		Limit:  req.Limit,
	}
}
