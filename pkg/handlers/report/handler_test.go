package report

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crm-tools/quote-atlas/pkg/models/api"
	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Assemble(ctx context.Context, req domain.ReportRequest) (*domain.ReportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportResult), args.Error(1)
}

func (m *mockReportService) Catalog(d domain.Domain) ([]domain.Field, error) {
	args := m.Called(d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Field), args.Error(1)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func newTestRouter(reports *mockReportService, dash *mockDashboardService) http.Handler {
	h := NewHandler(reports, dash)
	h.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	}

	r := chi.NewRouter()
	r.Get("/api/v1/dashboard", h.GetDashboard)
	r.Get("/api/v1/reports/{domain}/fields", h.ListFields)
	r.Post("/api/v1/reports/{domain}/preview", h.Preview)
	r.Post("/api/v1/reports/{domain}/export", h.Export)
	return r
}

func sampleResult() *domain.ReportResult {
	return &domain.ReportResult{
		Domain:       domain.DomainQuotes,
		Headers:      []string{"Número de Cotización", "Monto Total"},
		Rows:         [][]string{{"COT-001", "$1,500.50"}},
		TotalRecords: 1,
	}
}

func TestHandler_Preview(t *testing.T) {
	reports := new(mockReportService)
	reports.On("Assemble", mock.Anything, mock.MatchedBy(func(req domain.ReportRequest) bool {
		return req.Domain == domain.DomainQuotes && req.Mode == domain.ModePreview
	})).Return(sampleResult(), nil)

	router := newTestRouter(reports, new(mockDashboardService))

	body, _ := json.Marshal(api.ReportRequest{Fields: []string{"quotes.quote_number", "quotes.total_amount"}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/quotes/preview", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ReportPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalRecords)
	assert.Equal(t, []string{"Número de Cotización", "Monto Total"}, resp.Headers)
	reports.AssertExpectations(t)
}

func TestHandler_Export(t *testing.T) {
	reports := new(mockReportService)
	reports.On("Assemble", mock.Anything, mock.MatchedBy(func(req domain.ReportRequest) bool {
		return req.Mode == domain.ModeExport && req.Limit == 100
	})).Return(sampleResult(), nil)

	router := newTestRouter(reports, new(mockDashboardService))

	body, _ := json.Marshal(api.ReportRequest{
		Fields: []string{"quotes.quote_number", "quotes.total_amount"},
		Limit:  100,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/quotes/export", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="reporte_quotes_20240615_103000.csv"`,
		rec.Header().Get("Content-Disposition"))

	// BOM, then header row, then the data row.
	payload := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimSpace(string(payload[3:])), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Número de Cotización,Monto Total", strings.TrimRight(lines[0], "\r"))
	assert.Equal(t, `COT-001,"$1,500.50"`, strings.TrimRight(lines[1], "\r"))
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty selection", report.ErrEmptySelection, http.StatusBadRequest},
		{"invalid range", &report.DateRangeError{Messages: []string{"fecha inicial inválida"}}, http.StatusBadRequest},
		{"store failure", report.ErrStore, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports := new(mockReportService)
			reports.On("Assemble", mock.Anything, mock.Anything).Return(nil, tc.err)
			router := newTestRouter(reports, new(mockDashboardService))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/quotes/preview",
				strings.NewReader(`{"fields":[]}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp api.ReportError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Errors)
		})
	}
}

func TestHandler_UnknownDomainIs404(t *testing.T) {
	router := newTestRouter(new(mockReportService), new(mockDashboardService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/inventory/preview",
		strings.NewReader(`{"fields":["x.y"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BadJSONBody(t *testing.T) {
	router := newTestRouter(new(mockReportService), new(mockDashboardService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/quotes/preview",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListFields(t *testing.T) {
	reports := new(mockReportService)
	reports.On("Catalog", domain.DomainProducts).Return([]domain.Field{
		{Token: "products.stock", DataKey: "stock", DisplayName: "Stock"},
	}, nil)

	router := newTestRouter(reports, new(mockDashboardService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/products/fields", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "products", resp.Domain)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "products.stock", resp.Fields[0].Token)
}

func TestHandler_Dashboard(t *testing.T) {
	dash := new(mockDashboardService)
	dash.On("Summary", mock.Anything).Return(&domain.DashboardSummary{
		Clients:        12,
		Products:       34,
		Quotes:         56,
		ApprovedQuotes: 20,
		Trend: domain.SalesTrend{
			CurrentTotal:  1250,
			PreviousTotal: 1000,
			GrowthPercent: 25,
		},
	}, nil)

	router := newTestRouter(new(mockReportService), dash)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Clients)
	assert.Equal(t, 25.0, resp.Trend.GrowthPercent)
}
