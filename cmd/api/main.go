package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart"
	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/api"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/scheduler"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/ingesting"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/syncing"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.EnsureSchema(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o schema do banco")
	}

	salesEventRepo := repository.NewSalesEventRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	trackedPageRepo := repository.NewTrackedPageRepository(pgConn)
	serviceHealthRepo := repository.NewServiceHealthRepository(pgConn)

	if cfg.Hotmart.WebhookSecret == "" {
		logrus.Warn("HOTMART_WEBHOOK_SECRET não configurado: todos os webhooks serão rejeitados")
	}

	ingestService := ingesting.NewService(hotmart.New(cfg), salesEventRepo)
	syncService := syncing.NewService(cfg, ga4.NewFromConfig(cfg), trackedPageRepo, metricRepo)
	reportService := reporting.NewService(metricRepo, salesEventRepo, trackedPageRepo, serviceHealthRepo)

	authenticator := authenticating.NewService(cfg.Auth)
	if authenticator == nil {
		logrus.Warn("AUTH_SECRET não configurado: rotas administrativas sem autenticação")
	}

	services := api.Services{
		DB:            pgConn,
		Ingester:      ingestService,
		Syncer:        syncService,
		Reporter:      reportService,
		Authenticator: authenticator,
	}

	// O worker embutido só roda quando WORKER_ENABLED=true; o padrão é o binário cmd/worker
	if cfg.Worker.Enabled {
		jobScheduler := scheduler.New(serviceHealthRepo, scheduler.DefaultJobs(cfg, pgConn, syncService)...)
		if err := jobScheduler.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de jobs")
		} else {
			logrus.Info("Agendador de jobs iniciado com sucesso")
			defer jobScheduler.Stop()
			services.Jobs = jobScheduler
		}
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
