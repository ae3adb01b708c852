package repository

//go:generate mockgen -source=metric.go -destination=mocks/metric.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
)

const (
	metricsTable = "metrics_timeseries"

	// 7 parâmetros por linha, bem abaixo do limite de 65535 do postgres
	metricInsertBatchSize = 1000
)

type MetricRepository interface {
	ReplaceWindow(ctx context.Context, window domain.MetricWindow, facts []*domain.MetricFact) (int, error)
	PageSummaries(ctx context.Context, since time.Time) ([]*domain.FunnelPage, error)
}

type metricRepository struct {
	conn postgres.Conn
}

func NewMetricRepository(conn postgres.Conn) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// ReplaceWindow apaga os fatos da janela e insere os novos na mesma transação.
// Leitores concorrentes veem a janela antiga ou a nova, nunca a janela vazia.
func (r *metricRepository) ReplaceWindow(ctx context.Context, window domain.MetricWindow, facts []*domain.MetricFact) (int, error) {
	deleteSQL, deleteArgs, err := buildWindowDelete(window)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de remoção: %w", err)
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		stmtCtx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
		defer cancel()

		if _, err := q.ExecContext(stmtCtx, deleteSQL, deleteArgs...); err != nil {
			return dbError("erro ao remover janela de métricas", err)
		}

		for start := 0; start < len(facts); start += metricInsertBatchSize {
			end := min(start+metricInsertBatchSize, len(facts))
			n, err := r.insertBatch(ctx, q, facts[start:end])
			if err != nil {
				return err
			}
			inserted += n
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func buildWindowDelete(window domain.MetricWindow) (string, []interface{}, error) {
	metrics := make([]string, 0, len(window.Metrics))
	for _, metric := range window.Metrics {
		metrics = append(metrics, string(metric))
	}

	return squirrel.
		Delete(metricsTable).
		Where(squirrel.Eq{"source": window.Source, "dimension_type": window.DimensionType}).
		Where(squirrel.Expr("metric = ANY(?)", pq.Array(metrics))).
		Where(squirrel.Expr("dimension_value = ANY(?)", pq.Array(window.DimensionValues))).
		Where(squirrel.GtOrEq{"ts": window.Start.UTC()}).
		Where(squirrel.LtOrEq{"ts": window.End.UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *metricRepository) insertBatch(ctx context.Context, q postgres.Queryer, facts []*domain.MetricFact) (int, error) {
	if len(facts) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(metricsTable).
		Columns("source", "metric", "dimension_type", "dimension_value", "ts", "value", "extra")

	for _, fact := range facts {
		extra := string(fact.Extra)
		if extra == "" {
			extra = "{}"
		}
		builder = builder.Values(
			fact.Source,
			string(fact.Metric),
			fact.DimensionType,
			fact.DimensionValue,
			fact.Timestamp.UTC(),
			fact.Value,
			squirrel.Expr("?::jsonb", extra),
		)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	stmtCtx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	result, err := q.ExecContext(stmtCtx, query, args...)
	if err != nil {
		return 0, dbError("erro ao inserir métricas", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return len(facts), nil
	}

	return int(affected), nil
}

// PageSummaries agrega as métricas de cada página ativa desde o instante informado.
// Páginas sem dados aparecem com zero.
func (r *metricRepository) PageSummaries(ctx context.Context, since time.Time) ([]*domain.FunnelPage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	query, args, err := squirrel.
		Select("p.slug", "p.label", "p.url", "p.page_path", "p.sort_order").
		Column(squirrel.Expr("COALESCE(SUM(m.value) FILTER (WHERE m.metric = ?), 0) AS views", string(domain.MetricViews))).
		Column(squirrel.Expr("COALESCE(AVG(m.value) FILTER (WHERE m.metric = ?), 0) AS avg_engagement", string(domain.MetricEngagement))).
		Column(squirrel.Expr("COALESCE(AVG(m.value) FILTER (WHERE m.metric = ?), 0) AS avg_bounce_rate", string(domain.MetricBounceRate))).
		From(trackedPagesTable+" p").
		LeftJoin(
			metricsTable+" m ON m.dimension_value = p.page_path AND m.source = ? AND m.dimension_type = ? AND m.ts >= ?",
			domain.SourceGA4, domain.DimensionTypePage, since.UTC(),
		).
		Where(squirrel.Eq{"p.is_active": true}).
		GroupBy("p.id", "p.slug", "p.label", "p.url", "p.page_path", "p.sort_order").
		OrderBy("p.sort_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pages := make([]*domain.FunnelPage, 0)
	if err := r.conn.SelectContext(ctx, &pages, query, args...); err != nil {
		return nil, dbError("erro ao agregar métricas por página", err)
	}

	return pages, nil
}
