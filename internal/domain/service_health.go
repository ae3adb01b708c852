package domain

import (
	"encoding/json"
	"time"
)

type HealthStatus string

const (
	HealthStatusOK    HealthStatus = "ok"
	HealthStatusError HealthStatus = "error"
)

// ServiceHealthRecord é uma entrada do log de saúde dos serviços
type ServiceHealthRecord struct {
	ID        int64           `json:"-" db:"id"`
	Service   string          `json:"service" db:"service"`
	Status    HealthStatus    `json:"status" db:"status"`
	Details   json.RawMessage `json:"details" db:"details"`
	CheckedAt time.Time       `json:"checked_at" db:"checked_at"`
}
