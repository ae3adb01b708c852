package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/launch-metrics-api/internal/scheduler"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

//go:generate mockgen -source=jobs.go -destination=mocks/jobs.go -package=mocks

// JobRunner é a parte do agendador exposta pela API
type JobRunner interface {
	TriggerManualRun(name string) error
	GetStatus() map[string]any
}

// RunJob dispara manualmente um job em segundo plano
func RunJob(runner JobRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunJob")

		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Agendador não habilitado nesta instância", nil)
			return
		}

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do job não especificado", nil)
			return
		}

		if err := runner.TriggerManualRun(name); err != nil {
			switch {
			case errors.Is(err, scheduler.ErrJobNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job não encontrado", map[string]string{"job": name})
			case errors.Is(err, scheduler.ErrJobRunning):
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Job já está em execução", map[string]string{"job": name})
			default:
				logger.WithError(err).Error("jobs: erro ao disparar job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar job", nil)
			}
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"ok":      true,
			"job":     name,
			"message": "Job iniciado com sucesso",
		})
	})
}

// GetJobsStatus retorna o estado dos jobs agendados
func GetJobsStatus(runner JobRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"started": false,
			"jobs":    map[string]any{},
		}
		if runner != nil {
			status = runner.GetStatus()
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":     true,
			"status": status,
		})
	})
}
