package ga4

import (
	"context"
	"strconv"
	"strings"
	"time"

	ga4domain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/launch-metrics-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/launch-metrics-api/internal/config"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
	"github.com/vfg2006/launch-metrics-api/pkg/utils"
	"google.golang.org/api/analyticsdata/v1beta"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Máximo de linhas por página de resultado aceito pela Data API
const reportPageSize = 100000

type GA4Integrator interface {
	FetchReport(ctx context.Context, pagePaths []string, start, end time.Time) ([]ga4domain.ReportRow, error)
}

type GA4Service struct {
	cfg    *config.Config
	Client ga4client.Client
}

func New(cfg *config.Config, client ga4client.Client) GA4Integrator {
	return &GA4Service{
		cfg:    cfg,
		Client: client,
	}
}

// NewFromConfig cria o cliente a cada chamada, para que credenciais ausentes falhem só a sincronização
func NewFromConfig(cfg *config.Config) func(ctx context.Context) (GA4Integrator, error) {
	return func(ctx context.Context) (GA4Integrator, error) {
		client, err := ga4client.NewClient(ctx, cfg.GA4)
		if err != nil {
			return nil, err
		}
		return New(cfg, client), nil
	}
}

// FetchReport busca views, duração média de sessão e bounce rate por dia e página.
// As linhas mantêm a ordem devolvida pelo GA4.
func (s *GA4Service) FetchReport(ctx context.Context, pagePaths []string, start, end time.Time) ([]ga4domain.ReportRow, error) {
	if len(pagePaths) == 0 {
		return nil, ga4domain.ErrNoPagePaths
	}

	logger := log.ForContext(ctx)

	req := BuildReportRequest(pagePaths, start, end)
	rows := make([]ga4domain.ReportRow, 0)

	for {
		resp, err := s.runReport(ctx, req)
		if err != nil {
			return nil, err
		}

		for _, row := range resp.Rows {
			rows = append(rows, ParseRow(row))
		}

		req.Offset += int64(len(resp.Rows))
		if len(resp.Rows) == 0 || req.Offset >= resp.RowCount {
			break
		}

		logger.Debugf("ga4: paginando relatório, offset=%d total=%d", req.Offset, resp.RowCount)
	}

	return rows, nil
}

func (s *GA4Service) runReport(ctx context.Context, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GA4.RequestTimeout())
	defer cancel()

	return s.Client.RunReport(ctx, s.cfg.GA4.PropertyID, req)
}

// BuildReportRequest monta a consulta diária por página, filtrando as páginas por igualdade exata
func BuildReportRequest(pagePaths []string, start, end time.Time) *analyticsdata.RunReportRequest {
	filters := make([]*analyticsdata.FilterExpression, 0, len(pagePaths))
	for _, pagePath := range pagePaths {
		filters = append(filters, &analyticsdata.FilterExpression{
			Filter: &analyticsdata.Filter{
				FieldName: ga4domain.DimensionPagePath,
				StringFilter: &analyticsdata.StringFilter{
					MatchType: "EXACT",
					Value:     pagePath,
				},
			},
		})
	}

	return &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{
				StartDate: start.UTC().Format(time.DateOnly),
				EndDate:   end.UTC().Format(time.DateOnly),
			},
		},
		Dimensions: []*analyticsdata.Dimension{
			{Name: ga4domain.DimensionDate},
			{Name: ga4domain.DimensionPagePath},
		},
		Metrics: []*analyticsdata.Metric{
			{Name: ga4domain.MetricScreenPageViews},
			{Name: ga4domain.MetricAverageSessionDuration},
			{Name: ga4domain.MetricBounceRate},
		},
		DimensionFilter: &analyticsdata.FilterExpression{
			OrGroup: &analyticsdata.FilterExpressionList{
				Expressions: filters,
			},
		},
		Limit: reportPageSize,
	}
}

// ParseRow converte uma linha da resposta. Métricas ausentes ou inválidas viram 0.
func ParseRow(row *analyticsdata.Row) ga4domain.ReportRow {
	result := ga4domain.ReportRow{}
	if row == nil {
		return result
	}

	if len(row.DimensionValues) >= 2 {
		if row.DimensionValues[0] != nil {
			date, err := time.Parse(ga4domain.ReportDateLayout, strings.TrimSpace(row.DimensionValues[0].Value))
			if err == nil {
				result.Date = date.UTC()
			}
		}
		if row.DimensionValues[1] != nil {
			result.PagePath = row.DimensionValues[1].Value
		}
	}

	result.Views = metricValue(row, 0)
	result.AvgSessionDuration = metricValue(row, 1)
	result.BounceRate = metricValue(row, 2)
	result.Valid = !result.Date.IsZero() && result.PagePath != ""

	return result
}

func metricValue(row *analyticsdata.Row, index int) float64 {
	if index >= len(row.MetricValues) || row.MetricValues[index] == nil {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(row.MetricValues[index].Value), 64)
	if err != nil {
		return 0
	}

	return utils.FiniteOrZero(value)
}
