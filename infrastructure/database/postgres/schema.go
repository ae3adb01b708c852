package postgres

import (
	"context"
	"fmt"
)

// schemaStatements cria as tabelas usadas pela API e pelo worker. Todas são idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales_events (
		id BIGSERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		external_id TEXT NOT NULL,
		status TEXT,
		amount NUMERIC(14, 2),
		currency TEXT,
		occurred_at TIMESTAMPTZ,
		received_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		raw_payload JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT sales_events_source_external_id_key UNIQUE (source, external_id)
	)`,
	`CREATE INDEX IF NOT EXISTS sales_events_occurred_idx
		ON sales_events ((COALESCE(occurred_at, received_at)))`,
	`CREATE TABLE IF NOT EXISTS metrics_timeseries (
		id BIGSERIAL PRIMARY KEY,
		source TEXT NOT NULL,
		metric TEXT NOT NULL,
		dimension_type TEXT NOT NULL,
		dimension_value TEXT NOT NULL,
		ts TIMESTAMPTZ NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		extra JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS metrics_timeseries_lookup_idx
		ON metrics_timeseries (source, metric, dimension_type, dimension_value, ts)`,
	`CREATE TABLE IF NOT EXISTS service_health (
		id BIGSERIAL PRIMARY KEY,
		service TEXT NOT NULL,
		status TEXT NOT NULL,
		details JSONB NOT NULL DEFAULT '{}'::jsonb,
		checked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS service_health_service_checked_idx
		ON service_health (service, checked_at DESC)`,
	`CREATE TABLE IF NOT EXISTS config_tracked_pages (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		label TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		page_path TEXT NOT NULL,
		sort_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// EnsureSchema cria as tabelas e índices que ainda não existem
func EnsureSchema(ctx context.Context, q Queryer) error {
	for i, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema (statement %d): %w", i+1, err)
		}
	}
	return nil
}
