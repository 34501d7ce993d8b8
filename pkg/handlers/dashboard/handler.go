package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fin-tools/report-atlas/pkg/adapters"
	"github.com/fin-tools/report-atlas/pkg/models/api"
	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/services/dashboard"
)

type Handler struct {
	explorer dashboard.Explorer
}

func NewHandler(explorer dashboard.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	opts, err := h.explorer.GetFilterOptions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to get filter options")
		http.Error(w, "report backend unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, logger, adapters.MapFilterOptionsDomainToApi(opts))
}

func (h *Handler) GetFilteredView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	sel := domain.FilterSelection{
		Region: r.URL.Query().Get("region"),
		Period: r.URL.Query().Get("period"),
		KBK:    r.URL.Query().Get("kbk"),
	}

	if sel.Period == "" {
		http.Error(w, "'period' query parameter is required", http.StatusBadRequest)
		return
	}

	view, err := h.explorer.GetFilteredView(ctx, sel)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute filtered view")
		http.Error(w, "report backend unavailable", http.StatusBadGateway)
		return
	}
	if view == nil {
		http.Error(w, "no report matches the selected filters", http.StatusNotFound)
		return
	}

	writeJSON(w, logger, adapters.MapFilteredViewDomainToApi(view))
}

func (h *Handler) GetReportTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.explorer.GetReportTable(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build report table")
		http.Error(w, "report backend unavailable", http.StatusBadGateway)
		return
	}

	response := make([]api.TableRow, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapTableRowDomainToApi(row))
	}

	writeJSON(w, logger, response)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
