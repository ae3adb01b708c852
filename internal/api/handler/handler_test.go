package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart"
	repomocks "github.com/vfg2006/launch-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-metrics-api/internal/api/handler/mocks"
	"github.com/vfg2006/launch-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/internal/scheduler"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/ingesting"
	reportingmocks "github.com/vfg2006/launch-metrics-api/internal/usecases/reporting/mocks"
	syncingmocks "github.com/vfg2006/launch-metrics-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "segredo-hotmart"

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

type statsPinger struct {
	fakePinger
}

func (statsPinger) Stats() map[string]any {
	return map[string]any{"open_connections": 2}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHotmartWebhook(t *testing.T) {
	validPayload := []byte(`{"transaction_id":"HP-1","status":"approved","amount":97,"currency":"BRL"}`)
	missingID := []byte(`{"status":"approved","amount":97}`)

	tests := []struct {
		name           string
		body           []byte
		signature      string
		setupMock      func(repo *repomocks.MockSalesEventRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:      "Compra assinada é gravada",
			body:      validPayload,
			signature: hotmart.Sign(validPayload, webhookSecret),
			setupMock: func(repo *repomocks.MockSalesEventRepository) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.PurchaseEvent) error {
						assert.Equal(t, domain.SourceHotmart, event.Source)
						assert.Equal(t, "HP-1", event.ExternalID)
						assert.Equal(t, "97", event.Amount.Decimal.String())
						assert.JSONEq(t, string(validPayload), string(event.RawPayload))
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Assinatura de outro segredo",
			body:           validPayload,
			signature:      hotmart.Sign(validPayload, "outro"),
			setupMock:      func(repo *repomocks.MockSalesEventRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid signature",
		},
		{
			name:           "Sem assinatura",
			body:           validPayload,
			setupMock:      func(repo *repomocks.MockSalesEventRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid signature",
		},
		{
			name:           "Sem id da transação",
			body:           missingID,
			signature:      hotmart.Sign(missingID, webhookSecret),
			setupMock:      func(repo *repomocks.MockSalesEventRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "missing transaction id",
		},
		{
			name:           "JSON inválido",
			body:           []byte(`{"transaction_id":`),
			signature:      hotmart.Sign([]byte(`{"transaction_id":`), webhookSecret),
			setupMock:      func(repo *repomocks.MockSalesEventRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid payload",
		},
		{
			name:      "Falha ao gravar",
			body:      validPayload,
			signature: hotmart.Sign(validPayload, webhookSecret),
			setupMock: func(repo *repomocks.MockSalesEventRepository) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  ingesting.ErrStorePurchase.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockSalesEventRepository(ctrl)
			tt.setupMock(repo)

			cfg := &config.Config{Hotmart: config.Hotmart{WebhookSecret: webhookSecret}}
			service := ingesting.NewService(hotmart.New(cfg), repo)

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/hotmart", bytes.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(hotmart.SignatureHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			HotmartWebhook(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, body["ok"])
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestSyncGA4(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Sincronização concluída", func(t *testing.T) {
		syncer := syncingmocks.NewMockSyncer(ctrl)
		start, end := "2024-01-01", "2024-01-07"
		syncer.EXPECT().SyncMetrics(gomock.Any()).Return(&domain.SyncResult{Inserted: 21, StartDate: &start, EndDate: &end}, nil)

		rec := httptest.NewRecorder()
		SyncGA4(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ga4/sync", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["ok"])
		result := body["result"].(map[string]any)
		assert.Equal(t, float64(21), result["inserted"])
		assert.Equal(t, start, result["startDate"])
		assert.Equal(t, end, result["endDate"])
	})

	t.Run("Sem páginas ativas", func(t *testing.T) {
		syncer := syncingmocks.NewMockSyncer(ctrl)
		syncer.EXPECT().SyncMetrics(gomock.Any()).Return(&domain.SyncResult{Inserted: 0}, nil)

		rec := httptest.NewRecorder()
		SyncGA4(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ga4/sync", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody(t, rec)["result"].(map[string]any)
		assert.Equal(t, float64(0), result["inserted"])
		assert.Nil(t, result["startDate"])
	})

	t.Run("Falha no GA4", func(t *testing.T) {
		syncer := syncingmocks.NewMockSyncer(ctrl)
		syncer.EXPECT().SyncMetrics(gomock.Any()).Return(nil, errors.New("credenciais do GA4 não configuradas"))

		rec := httptest.NewRecorder()
		SyncGA4(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ga4/sync", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "credenciais do GA4 não configuradas", body["error"])
	})
}

func TestGetOverview(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedDays int
	}{
		{name: "Sem range usa 7 dias", query: "", expectedDays: 7},
		{name: "Range de 30 dias", query: "?range=30d", expectedDays: 30},
		{name: "Range malformado usa 7 dias", query: "?range=abc", expectedDays: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportingmocks.NewMockReporter(ctrl)
			reporter.EXPECT().Overview(gomock.Any(), tt.expectedDays).Return(&domain.Overview{
				Range: domain.RangeLabel(tt.expectedDays),
				Funnel: domain.Funnel{
					Pages:       []*domain.FunnelPage{{Slug: "vsl", Views: 200}, {Slug: "signup", Views: 50}},
					Conversions: map[string]float64{"signup_vs_vsl": 25},
				},
				Sales: domain.SalesSummary{Count: 2, Revenue: 194},
			}, nil)

			rec := httptest.NewRecorder()
			GetOverview(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/overview"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, true, body["ok"])
			assert.Equal(t, domain.RangeLabel(tt.expectedDays), body["range"])

			funnel := body["funnel"].(map[string]any)
			assert.Len(t, funnel["pages"], 2)
			assert.Equal(t, float64(25), funnel["conversions"].(map[string]any)["signup_vs_vsl"])

			sales := body["sales"].(map[string]any)
			assert.Equal(t, float64(2), sales["count"])
			assert.Equal(t, float64(194), sales["revenue"])
		})
	}
}

func TestGetOverview_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().Overview(gomock.Any(), 7).Return(nil, errors.New("timeout"))

	rec := httptest.NewRecorder()
	GetOverview(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/overview", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["ok"])
}

func TestGetTrackedPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().TrackedPages(gomock.Any()).Return([]*domain.TrackedPage{
		{ID: "a1", Slug: "vsl", PagePath: "/vsl", SortOrder: 1, IsActive: true},
		{ID: "a2", Slug: "signup", PagePath: "/inscricao", SortOrder: 2},
	}, nil)

	rec := httptest.NewRecorder()
	GetTrackedPages(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config/tracked-pages", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	pages := body["pages"].([]any)
	require.Len(t, pages, 2)
	assert.Equal(t, "vsl", pages[0].(map[string]any)["slug"])
	assert.Equal(t, "/inscricao", pages[1].(map[string]any)["page_path"])
}

func TestHealthHandlers(t *testing.T) {
	t.Run("API no ar", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "api", body["service"])
	})

	t.Run("Banco respondendo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		DatabaseHealthHandler(fakePinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["db"])
		assert.NotContains(t, body, "pool")
	})

	t.Run("Banco com estatísticas do pool", func(t *testing.T) {
		rec := httptest.NewRecorder()
		DatabaseHealthHandler(statsPinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		pool := decodeBody(t, rec)["pool"].(map[string]any)
		assert.Equal(t, float64(2), pool["open_connections"])
	})

	t.Run("Banco fora do ar", func(t *testing.T) {
		rec := httptest.NewRecorder()
		DatabaseHealthHandler(fakePinger{err: errors.New("connection refused")}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["ok"])
	})

	t.Run("Saúde dos serviços", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := reportingmocks.NewMockReporter(ctrl)
		reporter.EXPECT().ServicesHealth(gomock.Any()).Return([]*domain.ServiceHealthRecord{
			{Service: "worker", Status: domain.HealthStatusOK, Details: []byte(`{"message":"heartbeat"}`)},
		}, nil)

		rec := httptest.NewRecorder()
		ServicesHealthHandler(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		services := decodeBody(t, rec)["services"].([]any)
		require.Len(t, services, 1)
		service := services[0].(map[string]any)
		assert.Equal(t, "worker", service["service"])
		assert.Equal(t, "ok", service["status"])
		assert.Equal(t, "heartbeat", service["details"].(map[string]any)["message"])
	})
}

func TestJobs(t *testing.T) {
	tests := []struct {
		name           string
		job            string
		triggerErr     error
		expectedStatus int
	}{
		{name: "Job disparado", job: scheduler.GA4SyncJobName, expectedStatus: http.StatusAccepted},
		{name: "Job inexistente", job: "desconhecido", triggerErr: scheduler.ErrJobNotFound, expectedStatus: http.StatusNotFound},
		{name: "Job em execução", job: scheduler.HeartbeatJobName, triggerErr: scheduler.ErrJobRunning, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			runner := mocks.NewMockJobRunner(ctrl)
			runner.EXPECT().TriggerManualRun(tt.job).Return(tt.triggerErr)

			rt := router.New(router.WithRoutes(Jobs(runner, nil)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs/"+tt.job+"/run", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestJobs_SemAgendador(t *testing.T) {
	rt := router.New(router.WithRoutes(Jobs(nil, nil)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs/ga4-sync/run", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)["status"].(map[string]any)
	assert.Equal(t, false, status["started"])
}

func TestGetJobsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockJobRunner(ctrl)
	runner.EXPECT().GetStatus().Return(map[string]any{
		"started": true,
		"jobs":    map[string]any{scheduler.HeartbeatJobName: map[string]any{"runs": 3}},
	})

	rec := httptest.NewRecorder()
	GetJobsStatus(runner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)["status"].(map[string]any)
	assert.Equal(t, true, status["started"])
	assert.Contains(t, status["jobs"], scheduler.HeartbeatJobName)
}
