package ga4client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/launch-metrics-api/internal/config"
	"google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

var (
	ErrMissingCredentials = errors.New("credenciais do GA4 não configuradas")
	ErrMissingPropertyID  = errors.New("GA4_PROPERTY_ID não configurado")
)

type Client interface {
	RunReport(ctx context.Context, propertyID string, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error)
}

type client struct {
	service *analyticsdata.Service
}

// NewClient cria o cliente da Data API usando, nesta ordem, o arquivo de chave,
// o JSON da service account ou o JSON em base64
func NewClient(ctx context.Context, cfg config.GA4) (Client, error) {
	if strings.TrimSpace(cfg.PropertyID) == "" {
		return nil, ErrMissingPropertyID
	}

	credentials, err := CredentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	service, err := analyticsdata.NewService(ctx, credentials, option.WithScopes(analyticsdata.AnalyticsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do GA4: %w", err)
	}

	return &client{service: service}, nil
}

func CredentialsOption(cfg config.GA4) (option.ClientOption, error) {
	switch {
	case strings.TrimSpace(cfg.KeyFile) != "":
		return option.WithCredentialsFile(cfg.KeyFile), nil
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), nil
	case strings.TrimSpace(cfg.CredentialsBase64) != "":
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cfg.CredentialsBase64))
		if err != nil {
			return nil, fmt.Errorf("GA4_CREDENTIALS_BASE64 inválido: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}

	return nil, ErrMissingCredentials
}

func (c *client) RunReport(ctx context.Context, propertyID string, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	property := propertyID
	if !strings.HasPrefix(property, "properties/") {
		property = "properties/" + property
	}

	resp, err := c.service.Properties.RunReport(property, req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar relatório do GA4: %w", err)
	}

	return resp, nil
}
