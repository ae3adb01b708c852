package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrFetchPageMetrics = errors.New("erro ao buscar métricas das páginas")
	ErrFetchSales       = errors.New("erro ao buscar resumo de vendas")
	ErrFetchPages       = errors.New("erro ao buscar páginas monitoradas")
	ErrFetchHealth      = errors.New("erro ao buscar saúde dos serviços")
)

type Reporter interface {
	Overview(ctx context.Context, days int) (*domain.Overview, error)
	TrackedPages(ctx context.Context) ([]*domain.TrackedPage, error)
	ServicesHealth(ctx context.Context) ([]*domain.ServiceHealthRecord, error)
}

type Service struct {
	metricRepository        repository.MetricRepository
	salesEventRepository    repository.SalesEventRepository
	trackedPageRepository   repository.TrackedPageRepository
	serviceHealthRepository repository.ServiceHealthRepository
	now                     func() time.Time
}

func NewService(
	metricRepo repository.MetricRepository,
	salesEventRepo repository.SalesEventRepository,
	trackedPageRepo repository.TrackedPageRepository,
	serviceHealthRepo repository.ServiceHealthRepository,
) *Service {
	return &Service{
		metricRepository:        metricRepo,
		salesEventRepository:    salesEventRepo,
		trackedPageRepository:   trackedPageRepo,
		serviceHealthRepository: serviceHealthRepo,
		now:                     time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Overview consolida funil e vendas dos últimos days dias (7 quando days <= 0)
func (s *Service) Overview(ctx context.Context, days int) (*domain.Overview, error) {
	if days <= 0 {
		days = utils.DefaultRangeDays
	}

	since := s.now().UTC().AddDate(0, 0, -days)

	pages, err := s.metricRepository.PageSummaries(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchPageMetrics, err)
	}

	for _, page := range pages {
		page.Views = utils.FiniteOrZero(page.Views)
		page.AvgEngagement = utils.RoundWithTwoDecimalPlace(page.AvgEngagement)
		page.AvgBounceRate = utils.RoundWithTwoDecimalPlace(page.AvgBounceRate)
	}

	sales, err := s.salesEventRepository.Summarize(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSales, err)
	}

	return &domain.Overview{
		Range: domain.RangeLabel(days),
		Funnel: domain.Funnel{
			Pages:       pages,
			Conversions: domain.CalculateConversions(pages, domain.FunnelConversions),
		},
		Sales: *sales,
	}, nil
}

// TrackedPages lista todas as páginas configuradas, ativas ou não
func (s *Service) TrackedPages(ctx context.Context) ([]*domain.TrackedPage, error) {
	pages, err := s.trackedPageRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchPages, err)
	}
	return pages, nil
}

// ServicesHealth retorna o último registro de saúde de cada serviço
func (s *Service) ServicesHealth(ctx context.Context) ([]*domain.ServiceHealthRecord, error) {
	records, err := s.serviceHealthRepository.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchHealth, err)
	}
	return records, nil
}
