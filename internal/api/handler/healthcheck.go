package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/launch-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

const dbPingTimeout = 3 * time.Second

type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// poolStatser é implementado por conexões que expõem estatísticas do pool
type poolStatser interface {
	Stats() map[string]any
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "api",
		})
	})
}

// DatabaseHealthHandler responde 503 quando o banco não responde ao ping
func DatabaseHealthHandler(db DatabasePinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("health: banco de dados indisponível")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "database unavailable", map[string]bool{"db": false})
			return
		}

		response := map[string]any{
			"ok": true,
			"db": true,
		}
		if statser, ok := db.(poolStatser); ok {
			response["pool"] = statser.Stats()
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// ServicesHealthHandler lista o último registro de saúde de cada serviço
func ServicesHealthHandler(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := service.ServicesHealth(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("health: erro ao consultar saúde dos serviços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar saúde dos serviços", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"services": records,
		})
	})
}
