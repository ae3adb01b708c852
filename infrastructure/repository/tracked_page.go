package repository

//go:generate mockgen -source=tracked_page.go -destination=mocks/tracked_page.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/launch-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
)

const (
	trackedPagesTable = "config_tracked_pages"
)

type TrackedPageRepository interface {
	ListActive(ctx context.Context) ([]*domain.TrackedPage, error)
	ListAll(ctx context.Context) ([]*domain.TrackedPage, error)
}

type trackedPageRepository struct {
	conn postgres.Conn
}

func NewTrackedPageRepository(conn postgres.Conn) TrackedPageRepository {
	return &trackedPageRepository{
		conn: conn,
	}
}

func (r *trackedPageRepository) ListActive(ctx context.Context) ([]*domain.TrackedPage, error) {
	return r.list(ctx, squirrel.Eq{"is_active": true})
}

func (r *trackedPageRepository) ListAll(ctx context.Context) ([]*domain.TrackedPage, error) {
	return r.list(ctx, nil)
}

func (r *trackedPageRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.TrackedPage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.conn.QueryTimeout())
	defer cancel()

	builder := squirrel.
		Select("id", "slug", "label", "url", "page_path", "sort_order", "is_active").
		From(trackedPagesTable).
		OrderBy("sort_order ASC", "slug ASC").
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pages := make([]*domain.TrackedPage, 0)
	if err := r.conn.SelectContext(ctx, &pages, query, args...); err != nil {
		return nil, dbError("erro ao listar páginas monitoradas", err)
	}

	return pages, nil
}
