package handler

import (
	"net/http"

	"github.com/vfg2006/launch-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/ingesting"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/syncing"
	"github.com/vfg2006/launch-metrics-api/pkg/middleware"
)

func Healthcheck(db DatabasePinger, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health/db",
			Method:  http.MethodGet,
			Handler: DatabaseHealthHandler(db),
		},
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: ServicesHealthHandler(reporter),
		},
	}
}

func Webhooks(ingester ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/api/webhooks/hotmart",
			Method:  http.MethodPost,
			Handler: HotmartWebhook(ingester),
		},
	}
}

// GA4 expõe a sincronização manual nos dois caminhos aceitos pelo painel
func GA4(syncer syncing.Syncer, authenticator authenticating.Authenticator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)}

	return []router.Route{
		{
			Path:        "/api/ga4/sync",
			Method:      http.MethodPost,
			Handler:     SyncGA4(syncer),
			Middlewares: adminOnly,
		},
		{
			Path:        "/ga4/sync",
			Method:      http.MethodPost,
			Handler:     SyncGA4(syncer),
			Middlewares: adminOnly,
		},
	}
}

func Reports(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(reporter),
		},
		{
			Path:    "/api/config/tracked-pages",
			Method:  http.MethodGet,
			Handler: GetTrackedPages(reporter),
		},
	}
}

func Jobs(runner JobRunner, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/jobs/status",
			Method:      http.MethodGet,
			Handler:     GetJobsStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)},
		},
		{
			Path:        "/api/jobs/:name/run",
			Method:      http.MethodPost,
			Handler:     RunJob(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authenticator)},
		},
	}
}
