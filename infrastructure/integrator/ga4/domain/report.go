package ga4domain

import (
	"errors"
	"time"
)

var ErrNoPagePaths = errors.New("nenhuma página informada para o relatório do GA4")

const (
	DimensionDate     = "date"
	DimensionPagePath = "pagePath"

	MetricScreenPageViews        = "screenPageViews"
	MetricAverageSessionDuration = "averageSessionDuration"
	MetricBounceRate             = "bounceRate"

	// Formato da dimensão date nas respostas
	ReportDateLayout = "20060102"
)

// ReportRow é uma linha do relatório diário por página.
// Linhas sem data válida ou sem página chegam com Valid=false.
type ReportRow struct {
	Date               time.Time
	PagePath           string
	Views              float64
	AvgSessionDuration float64
	BounceRate         float64
	Valid              bool
}
