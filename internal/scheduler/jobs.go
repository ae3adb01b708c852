package scheduler

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/usecases/syncing"
)

const (
	HeartbeatJobName = "worker-heartbeat"
	GA4SyncJobName   = "ga4-sync"

	HeartbeatHealthService = "worker"
	GA4SyncHealthService   = "ga4_sync"
)

// Pinger verifica a conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

// HeartbeatJob confirma periodicamente que o worker está vivo e alcança o banco
func HeartbeatJob(cfg *config.Config, db Pinger) Job {
	return Job{
		Name:          HeartbeatJobName,
		HealthService: HeartbeatHealthService,
		Interval:      cfg.Worker.HeartbeatInterval,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryDelay,
		Timeout:       cfg.Worker.JobTimeout(),
		Run: func(ctx context.Context) (any, error) {
			if db != nil {
				if err := db.Ping(ctx); err != nil {
					return nil, err
				}
			}
			return map[string]string{"message": "heartbeat"}, nil
		},
	}
}

// GA4SyncJob reconcilia a janela de métricas do GA4
func GA4SyncJob(cfg *config.Config, syncer syncing.Syncer) Job {
	return Job{
		Name:          GA4SyncJobName,
		HealthService: GA4SyncHealthService,
		Interval:      cfg.Worker.SyncInterval,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryDelay,
		Timeout:       cfg.Worker.JobTimeout(),
		Run: func(ctx context.Context) (any, error) {
			result, err := syncer.SyncMetrics(ctx)
			if err != nil {
				return nil, err
			}
			return result, nil
		},
	}
}

// DefaultJobs monta os jobs do worker conforme a configuração
func DefaultJobs(cfg *config.Config, db Pinger, syncer syncing.Syncer) []Job {
	jobs := []Job{HeartbeatJob(cfg, db)}

	if cfg.Worker.SyncEnabled && syncer != nil {
		jobs = append(jobs, GA4SyncJob(cfg, syncer))
	} else {
		logrus.Info("scheduler: sincronização do GA4 desabilitada por configuração")
	}

	logrus.WithFields(logrus.Fields{
		"heartbeat_interval": cfg.Worker.HeartbeatInterval.String(),
		"sync_interval":      cfg.Worker.SyncInterval.String(),
		"max_retries":        cfg.Worker.MaxRetries,
		"retry_delay":        cfg.Worker.RetryDelay.String(),
		"job_timeout":        cfg.Worker.JobTimeout().String(),
	}).Info("scheduler: configuração dos jobs carregada")

	return jobs
}
