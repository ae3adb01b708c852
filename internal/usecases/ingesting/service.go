package ingesting

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart"
	hotmartdomain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart/domain"
	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Ingester interface {
	IngestHotmartWebhook(ctx context.Context, rawBody []byte, header http.Header) (*domain.PurchaseEvent, error)
}

type Service struct {
	hotmartService       hotmart.HotmartIntegrator
	salesEventRepository repository.SalesEventRepository
}

func NewService(hotmartService hotmart.HotmartIntegrator, salesEventRepo repository.SalesEventRepository) Ingester {
	return &Service{
		hotmartService:       hotmartService,
		salesEventRepository: salesEventRepo,
	}
}

// IngestHotmartWebhook valida a assinatura, extrai a compra e grava o evento.
// Reentregas da mesma transação atualizam o registro existente.
func (s *Service) IngestHotmartWebhook(ctx context.Context, rawBody []byte, header http.Header) (*domain.PurchaseEvent, error) {
	logger := log.ForContext(ctx)

	if !s.hotmartService.VerifyRequest(rawBody, header) {
		logger.Warn("hotmart: assinatura do webhook inválida")
		return nil, NewIngestError(ErrInvalidSignature, apiErrors.ErrInvalidSignature, "")
	}

	purchase, err := s.hotmartService.ParsePurchase(rawBody)
	if err != nil {
		switch {
		case errors.Is(err, hotmartdomain.ErrMissingTransactionID):
			return nil, NewIngestError(ErrMissingTransactionID, apiErrors.ErrMissingRequiredData, "")
		case errors.Is(err, hotmartdomain.ErrInvalidPayload):
			return nil, NewIngestError(ErrInvalidPayload, apiErrors.ErrInvalidFormat, "")
		default:
			return nil, NewIngestError(ErrInvalidPayload, apiErrors.ErrInvalidRequest, err.Error())
		}
	}

	event := &domain.PurchaseEvent{
		Source:     domain.SourceHotmart,
		ExternalID: purchase.ExternalID,
		Status:     purchase.Status,
		Amount:     purchase.Amount,
		Currency:   purchase.Currency,
		OccurredAt: purchase.OccurredAt,
		RawPayload: append([]byte(nil), rawBody...),
	}

	if err := s.salesEventRepository.Upsert(ctx, event); err != nil {
		logger.WithError(err).Errorf("hotmart: erro ao gravar transação %s", event.ExternalID)
		return nil, NewIngestErrorWithID(ErrStorePurchase, apiErrors.ErrDatabaseOperation, event.ExternalID, "falha ao gravar evento de venda")
	}

	logger.Infof("hotmart: transação %s gravada", event.ExternalID)

	return event, nil
}
