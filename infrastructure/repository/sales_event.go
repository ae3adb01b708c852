package repository

//go:generate mockgen -source=sales_event.go -destination=mocks/sales_event.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
)

const (
	salesEventsTable = "sales_events"
)

type SalesEventRepository interface {
	Upsert(ctx context.Context, event *domain.PurchaseEvent) error
	Summarize(ctx context.Context, since time.Time) (*domain.SalesSummary, error)
}

type salesEventRepository struct {
	conn postgres.Conn
}

func NewSalesEventRepository(conn postgres.Conn) SalesEventRepository {
	return &salesEventRepository{
		conn: conn,
	}
}

// Upsert grava o evento ou atualiza o existente com a mesma (source, external_id).
// received_at é definido apenas na primeira gravação.
func (r *salesEventRepository) Upsert(ctx context.Context, event *domain.PurchaseEvent) error {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	rawPayload := string(event.RawPayload)
	if rawPayload == "" {
		rawPayload = "{}"
	}

	query, args, err := squirrel.
		Insert(salesEventsTable).
		Columns("source", "external_id", "status", "amount", "currency", "occurred_at", "raw_payload").
		Values(
			event.Source,
			event.ExternalID,
			event.Status,
			event.Amount,
			event.Currency,
			event.OccurredAt,
			squirrel.Expr("?::jsonb", rawPayload),
		).
		Suffix(`
			ON CONFLICT (source, external_id) DO UPDATE SET
				status = EXCLUDED.status,
				amount = EXCLUDED.amount,
				currency = EXCLUDED.currency,
				occurred_at = EXCLUDED.occurred_at,
				raw_payload = EXCLUDED.raw_payload,
				updated_at = NOW()
			RETURNING id, received_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowxContext(ctx, query, args...).Scan(&event.ID, &event.ReceivedAt, &event.UpdatedAt)
	if err != nil {
		return dbError("erro ao gravar evento de venda", err)
	}

	return nil
}

// Summarize conta as vendas e soma a receita desde o instante informado.
// Eventos sem occurred_at usam received_at.
func (r *salesEventRepository) Summarize(ctx context.Context, since time.Time) (*domain.SalesSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(amount), 0)").
		From(salesEventsTable).
		Where(squirrel.GtOrEq{"COALESCE(occurred_at, received_at)": since.UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count   int
		revenue decimal.Decimal
	)
	if err := r.conn.QueryRowxContext(ctx, query, args...).Scan(&count, &revenue); err != nil {
		return nil, dbError("erro ao resumir vendas", err)
	}

	return &domain.SalesSummary{
		Count:   count,
		Revenue: revenue.InexactFloat64(),
	}, nil
}
