package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/launch-metrics-api/internal/usecases/syncing"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

// SyncGA4 executa a sincronização de forma síncrona e devolve o resultado
func SyncGA4(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SyncGA4")

		result, err := service.SyncMetrics(r.Context())
		if err != nil {
			logger.WithError(err).Error("ga4 sync: falha na sincronização manual")

			code := apiErrors.ErrInternalServer
			switch {
			case errors.Is(err, syncing.ErrCreateIntegrator), errors.Is(err, syncing.ErrFetchReport):
				code = apiErrors.ErrExternalService
			case errors.Is(err, syncing.ErrListTrackedPages), errors.Is(err, syncing.ErrReplaceWindow):
				code = apiErrors.ErrDatabaseOperation
			}

			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":     true,
			"result": result,
		})
	})
}
