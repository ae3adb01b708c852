package domain

import (
	"encoding/json"
	"time"
)

type MetricName string

const (
	MetricViews      MetricName = "views"
	MetricEngagement MetricName = "engagement"
	MetricBounceRate MetricName = "bounce_rate"
)

// SyncedMetrics são as métricas substituídas a cada sincronização do GA4
var SyncedMetrics = []MetricName{MetricViews, MetricEngagement, MetricBounceRate}

const (
	SourceGA4         = "ga4"
	DimensionTypePage = "page"
)

// MetricFact é uma observação diária de uma métrica para uma dimensão
type MetricFact struct {
	Source         string          `json:"source" db:"source"`
	Metric         MetricName      `json:"metric" db:"metric"`
	DimensionType  string          `json:"dimension_type" db:"dimension_type"`
	DimensionValue string          `json:"dimension_value" db:"dimension_value"`
	Timestamp      time.Time       `json:"ts" db:"ts"`
	Value          float64         `json:"value" db:"value"`
	Extra          json.RawMessage `json:"extra" db:"extra"`
}

// MetricWindow identifica o conjunto de fatos substituído por uma sincronização
type MetricWindow struct {
	Source          string
	Metrics         []MetricName
	DimensionType   string
	DimensionValues []string
	Start           time.Time
	End             time.Time
}

// SyncResult é o resultado de uma sincronização de métricas
type SyncResult struct {
	Inserted  int     `json:"inserted"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}
