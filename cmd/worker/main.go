package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/scheduler"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/syncing"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("worker: erro ao conectar ao PostgreSQL")
	}
	defer pgConn.Close()

	if err := postgres.EnsureSchema(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("worker: erro ao preparar o schema")
	}

	syncService := syncing.NewService(
		cfg,
		ga4.NewFromConfig(cfg),
		repository.NewTrackedPageRepository(pgConn),
		repository.NewMetricRepository(pgConn),
	)

	jobScheduler := scheduler.New(
		repository.NewServiceHealthRepository(pgConn),
		scheduler.DefaultJobs(cfg, pgConn, syncService)...,
	)

	if err := jobScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("worker: erro ao iniciar o agendador")
	}

	logrus.Info("worker: em execução, aguardando sinal de término")
	<-ctx.Done()

	jobScheduler.Stop()
	logrus.Info("worker: encerrado")
}
