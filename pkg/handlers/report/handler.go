package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/crm-tools/quote-atlas/pkg/adapters"
	"github.com/crm-tools/quote-atlas/pkg/models/api"
	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/services/dashboard"
	"github.com/crm-tools/quote-atlas/pkg/services/export"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
)

type Handler struct {
	reports   report.Service
	dashboard dashboard.Service
	now       func() time.Time
}

func NewHandler(reports report.Service, dash dashboard.Service) *Handler {
	return &Handler{
		reports:   reports,
		dashboard: dash,
		now:       time.Now,
	}
}

// ListFields returns the selectable virtual fields of a report domain.
func (h *Handler) ListFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	d, ok := domain.ParseDomain(chi.URLParam(r, "domain"))
	if !ok {
		writeReportError(w, http.StatusNotFound, "tipo de reporte no soportado")
		return
	}

	fields, err := h.reports.Catalog(d)
	if err != nil {
		writeReportError(w, http.StatusNotFound, "tipo de reporte no soportado")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapCatalogDomainToApi(d, fields)); err != nil {
		logger.Error().Err(err).Str("domain", string(d)).Msg("failed to encode catalog")
	}
}

// Preview runs a row-capped report and returns it as JSON.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, domain.ModePreview)
}

// Export runs a full report and streams it as a CSV attachment with a
// UTF-8 BOM and a timestamped filename.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, domain.ModeExport)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, mode domain.Mode) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	d, ok := domain.ParseDomain(chi.URLParam(r, "domain"))
	if !ok {
		writeReportError(w, http.StatusNotFound, "tipo de reporte no soportado")
		return
	}

	var payload api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeReportError(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	req := adapters.MapApiRequestToDomain(d, payload, mode)
	result, err := h.reports.Assemble(ctx, req)
	if err != nil {
		writeAssembleError(w, err)
		return
	}

	if mode == domain.ModeExport {
		filename := export.Filename(d, h.now())
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := export.WriteCSV(w, result, export.Options{BOM: true}); err != nil {
			logger.Error().Err(err).Str("domain", string(d)).Msg("failed to stream csv export")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportResultDomainToApi(result)); err != nil {
		logger.Error().Err(err).Str("domain", string(d)).Msg("failed to encode report preview")
	}
}

// GetDashboard returns entity counters and the sales growth trend.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summary, err := h.dashboard.Summary(ctx)
	if err != nil {
		writeReportError(w, http.StatusInternalServerError, "no fue posible generar el resumen")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDashboardDomainToApi(summary)); err != nil {
		logger.Error().Err(err).Msg("failed to encode dashboard")
	}
}

// writeAssembleError maps the report error taxonomy onto HTTP responses.
// Store failures stay generic; the detail was already logged upstream.
func writeAssembleError(w http.ResponseWriter, err error) {
	var rangeErr *report.DateRangeError
	switch {
	case errors.Is(err, report.ErrEmptySelection):
		writeReportError(w, http.StatusBadRequest, "debe seleccionar al menos un campo")
	case errors.Is(err, report.ErrUnknownDomain):
		writeReportError(w, http.StatusNotFound, "tipo de reporte no soportado")
	case errors.As(err, &rangeErr):
		writeReportError(w, http.StatusBadRequest, rangeErr.Messages...)
	default:
		writeReportError(w, http.StatusInternalServerError, "no fue posible generar el reporte")
	}
}

func writeReportError(w http.ResponseWriter, status int, messages ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ReportError{Success: false, Errors: messages})
}
