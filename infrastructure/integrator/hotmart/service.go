package hotmart

import (
	"net/http"

	hotmartdomain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart/domain"
	"github.com/vfg2006/launch-metrics-api/internal/config"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type HotmartIntegrator interface {
	VerifyRequest(rawBody []byte, header http.Header) bool
	ParsePurchase(rawBody []byte) (*hotmartdomain.Purchase, error)
}

type HotmartService struct {
	cfg *config.Config
}

func New(cfg *config.Config) HotmartIntegrator {
	return &HotmartService{
		cfg: cfg,
	}
}

// VerifyRequest valida a assinatura do webhook com o segredo configurado
func (s *HotmartService) VerifyRequest(rawBody []byte, header http.Header) bool {
	return VerifySignature(rawBody, SignatureFromHeader(header), s.cfg.Hotmart.WebhookSecret)
}

func (s *HotmartService) ParsePurchase(rawBody []byte) (*hotmartdomain.Purchase, error) {
	return Normalize(rawBody)
}
