package repository

//go:generate mockgen -source=service_health.go -destination=mocks/service_health.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
)

const (
	serviceHealthTable = "service_health"
)

type ServiceHealthRepository interface {
	Record(ctx context.Context, record *domain.ServiceHealthRecord) error
	Latest(ctx context.Context) ([]*domain.ServiceHealthRecord, error)
}

type serviceHealthRepository struct {
	conn postgres.Conn
}

func NewServiceHealthRepository(conn postgres.Conn) ServiceHealthRepository {
	return &serviceHealthRepository{
		conn: conn,
	}
}

// healthRow recebe details como texto para não reaproveitar o buffer do driver
type healthRow struct {
	ID        int64     `db:"id"`
	Service   string    `db:"service"`
	Status    string    `db:"status"`
	Details   string    `db:"details"`
	CheckedAt time.Time `db:"checked_at"`
}

func (r *serviceHealthRepository) Record(ctx context.Context, record *domain.ServiceHealthRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	details := string(record.Details)
	if details == "" {
		details = "{}"
	}

	query, args, err := squirrel.
		Insert(serviceHealthTable).
		Columns("service", "status", "details").
		Values(record.Service, string(record.Status), squirrel.Expr("?::jsonb", details)).
		Suffix("RETURNING id, checked_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowxContext(ctx, query, args...).Scan(&record.ID, &record.CheckedAt); err != nil {
		return dbError("erro ao registrar saúde do serviço", err)
	}

	return nil
}

// Latest retorna o registro mais recente de cada serviço
func (r *serviceHealthRepository) Latest(ctx context.Context) ([]*domain.ServiceHealthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	query, args, err := squirrel.
		Select("DISTINCT ON (service) id", "service", "status", "details::text AS details", "checked_at").
		From(serviceHealthTable).
		OrderBy("service ASC", "checked_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows := make([]healthRow, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dbError("erro ao consultar saúde dos serviços", err)
	}

	records := make([]*domain.ServiceHealthRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.ServiceHealthRecord{
			ID:        row.ID,
			Service:   row.Service,
			Status:    domain.HealthStatus(row.Status),
			Details:   json.RawMessage(row.Details),
			CheckedAt: row.CheckedAt,
		})
	}

	return records, nil
}
