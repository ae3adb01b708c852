package syncing

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4"
	ga4domain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
	"github.com/vfg2006/launch-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IntegratorFactory cria a integração com o GA4 sob demanda, a cada sincronização
type IntegratorFactory func(ctx context.Context) (ga4.GA4Integrator, error)

type Syncer interface {
	SyncMetrics(ctx context.Context) (*domain.SyncResult, error)
}

type Service struct {
	cfg                   *config.Config
	newIntegrator         IntegratorFactory
	trackedPageRepository repository.TrackedPageRepository
	metricRepository      repository.MetricRepository
	now                   func() time.Time
}

func NewService(
	cfg *config.Config,
	newIntegrator IntegratorFactory,
	trackedPageRepo repository.TrackedPageRepository,
	metricRepo repository.MetricRepository,
) *Service {
	return &Service{
		cfg:                   cfg,
		newIntegrator:         newIntegrator,
		trackedPageRepository: trackedPageRepo,
		metricRepository:      metricRepo,
		now:                   time.Now,
	}
}

// WithClock substitui o relógio usado para calcular a janela
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SyncMetrics busca a janela de lookback no GA4 e substitui os fatos armazenados dessa janela.
// Sem páginas ativas nada é consultado nem gravado.
func (s *Service) SyncMetrics(ctx context.Context) (*domain.SyncResult, error) {
	logger := log.ForContext(ctx)

	pages, err := s.trackedPageRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListTrackedPages, err)
	}

	if len(pages) == 0 {
		logger.Info("ga4 sync: nenhuma página ativa, nada a sincronizar")
		return &domain.SyncResult{Inserted: 0}, nil
	}

	start, end := utils.LookbackWindow(s.now(), s.cfg.GA4.LookbackDays)
	pagePaths := domain.PagePaths(pages)

	integrator, err := s.newIntegrator(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateIntegrator, err)
	}

	rows, err := integrator.FetchReport(ctx, pagePaths, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchReport, err)
	}

	facts, skipped := s.buildFacts(rows)
	if skipped > 0 {
		logger.Warnf("ga4 sync: %d linhas ignoradas por data ou página inválida", skipped)
	}

	window := domain.MetricWindow{
		Source:          domain.SourceGA4,
		Metrics:         domain.SyncedMetrics,
		DimensionType:   domain.DimensionTypePage,
		DimensionValues: pagePaths,
		Start:           start,
		End:             end,
	}

	inserted, err := s.metricRepository.ReplaceWindow(ctx, window, facts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReplaceWindow, err)
	}

	startDate := start.Format(time.DateOnly)
	endDate := end.Format(time.DateOnly)

	logger.Infof("ga4 sync: %d fatos gravados entre %s e %s para %d páginas", inserted, startDate, endDate, len(pagePaths))

	return &domain.SyncResult{
		Inserted:  inserted,
		StartDate: &startDate,
		EndDate:   &endDate,
	}, nil
}

// buildFacts gera views, engagement e bounce_rate de cada linha válida
func (s *Service) buildFacts(rows []ga4domain.ReportRow) ([]*domain.MetricFact, int) {
	extra, _ := json.Marshal(map[string]string{"property_id": s.cfg.GA4.PropertyID})

	facts := make([]*domain.MetricFact, 0, len(rows)*len(domain.SyncedMetrics))
	skipped := 0

	for _, row := range rows {
		if !row.Valid {
			skipped++
			continue
		}

		values := map[domain.MetricName]float64{
			domain.MetricViews:      row.Views,
			domain.MetricEngagement: row.AvgSessionDuration,
			domain.MetricBounceRate: row.BounceRate,
		}

		for _, metric := range domain.SyncedMetrics {
			facts = append(facts, &domain.MetricFact{
				Source:         domain.SourceGA4,
				Metric:         metric,
				DimensionType:  domain.DimensionTypePage,
				DimensionValue: row.PagePath,
				Timestamp:      utils.StartOfDayUTC(row.Date),
				Value:          values[metric],
				Extra:          extra,
			})
		}
	}

	return facts, skipped
}
