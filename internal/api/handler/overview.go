package handler

import (
	"net/http"

	"github.com/vfg2006/launch-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
	"github.com/vfg2006/launch-metrics-api/pkg/utils"
)

// GetOverview aceita range=Nd; valores ausentes ou inválidos usam 7 dias
func GetOverview(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days := utils.ParseRangeDays(r.URL.Query().Get("range"))

		overview, err := service.Overview(r.Context(), days)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("overview: erro ao montar visão geral")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":     true,
			"range":  overview.Range,
			"funnel": overview.Funnel,
			"sales":  overview.Sales,
		})
	})
}

func GetTrackedPages(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.TrackedPages(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("config: erro ao listar páginas monitoradas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar páginas monitoradas", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":    true,
			"pages": pages,
		})
	})
}
