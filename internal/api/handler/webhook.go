package handler

import (
	"errors"
	"io"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/ingesting"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

const maxWebhookBodyBytes = 1 << 20

// HotmartWebhook lê o corpo bruto uma única vez; a assinatura é calculada sobre esses bytes
func HotmartWebhook(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.WithError(pkgerrors.Wrap(err, "hotmart webhook: erro ao ler corpo")).Warn("hotmart: requisição rejeitada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid body", nil)
			return
		}

		event, err := service.IngestHotmartWebhook(r.Context(), rawBody, r.Header)
		if err != nil {
			var ingestErr *ingesting.IngestError
			if errors.As(err, &ingestErr) {
				apiErrors.WriteError(w, ingestErr.Code, ingestErr.Err.Error(), nil)
				return
			}

			logger.WithError(err).Error("hotmart: erro inesperado ao processar webhook")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
			return
		}

		logger.WithField("external_id", event.ExternalID).Debug("hotmart: webhook processado")

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
}
