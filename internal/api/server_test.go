package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/authenticating"
	ingestingmocks "github.com/vfg2006/launch-metrics-api/internal/usecases/ingesting/mocks"
	reportingmocks "github.com/vfg2006/launch-metrics-api/internal/usecases/reporting/mocks"
	syncingmocks "github.com/vfg2006/launch-metrics-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
	"github.com/vfg2006/launch-metrics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestConfig(secret string) *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:               "127.0.0.1",
			Port:               "0",
			CorsAllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.Auth{Secret: secret},
	}
}

func newTestServices(ctrl *gomock.Controller, cfg *config.Config) (Services, *syncingmocks.MockSyncer) {
	syncer := syncingmocks.NewMockSyncer(ctrl)
	return Services{
		DB:            okPinger{},
		Ingester:      ingestingmocks.NewMockIngester(ctrl),
		Syncer:        syncer,
		Reporter:      reportingmocks.NewMockReporter(ctrl),
		Authenticator: authenticating.NewService(cfg.Auth),
	}, syncer
}

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func TestNew_DependenciasAusentes(t *testing.T) {
	_, err := New(newTestConfig(""), Services{})
	assert.Error(t, err)
}

func TestNewHandler_RotasAdministrativas(t *testing.T) {
	const secret = "segredo-admin"

	issuer := authenticating.NewService(config.Auth{Secret: secret})
	adminToken, err := issuer.GenerateToken("operador", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	viewerToken, err := issuer.GenerateToken("painel", "viewer", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		secret         string
		authorization  string
		expectSync     bool
		expectedStatus int
	}{
		{name: "Sem AUTH_SECRET a rota fica aberta", secret: "", expectSync: true, expectedStatus: http.StatusOK},
		{name: "Sem token", secret: secret, expectedStatus: http.StatusUnauthorized},
		{name: "Token sem Bearer", secret: secret, authorization: adminToken, expectedStatus: http.StatusUnauthorized},
		{name: "Token inválido", secret: secret, authorization: "Bearer abc", expectedStatus: http.StatusUnauthorized},
		{name: "Papel sem permissão", secret: secret, authorization: "Bearer " + viewerToken, expectedStatus: http.StatusForbidden},
		{name: "Administrador", secret: secret, authorization: "Bearer " + adminToken, expectSync: true, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := newTestConfig(tt.secret)
			services, syncer := newTestServices(ctrl, cfg)
			if tt.expectSync {
				syncer.EXPECT().SyncMetrics(gomock.Any()).Return(&domain.SyncResult{Inserted: 0}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/ga4/sync", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			NewHandler(cfg, services).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNewHandler_RotasPublicas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig("segredo-admin")
	services, _ := newTestServices(ctrl, cfg)
	h := NewHandler(cfg, services)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webhooks/hotmart", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewHandler_Cors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig("")
	services, _ := newTestServices(ctrl, cfg)
	h := NewHandler(cfg, services)

	req := httptest.NewRequest(http.MethodOptions, "/api/overview", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/overview", nil)
	req.Header.Set("Origin", "https://desconhecido.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
