package domain

import (
	"fmt"

	"github.com/vfg2006/launch-metrics-api/pkg/utils"
)

// FunnelPage representa as métricas agregadas de uma página monitorada
type FunnelPage struct {
	Slug          string  `json:"slug" db:"slug"`
	Label         string  `json:"label" db:"label"`
	URL           string  `json:"url" db:"url"`
	PagePath      string  `json:"page_path" db:"page_path"`
	SortOrder     int     `json:"sort_order" db:"sort_order"`
	Views         float64 `json:"views" db:"views"`
	AvgEngagement float64 `json:"avg_engagement" db:"avg_engagement"`
	AvgBounceRate float64 `json:"avg_bounce_rate" db:"avg_bounce_rate"`
}

// Conversion define uma razão entre duas etapas do funil, identificadas pelo slug
type Conversion struct {
	Name      string
	Stage     string
	Reference string
}

// FunnelConversions são as conversões exibidas no painel
var FunnelConversions = []Conversion{
	{Name: "signup_vs_vsl", Stage: "signup", Reference: "vsl"},
	{Name: "confirmation_vs_vsl", Stage: "confirmation", Reference: "vsl"},
	{Name: "aula1_vs_confirmation", Stage: "aula1", Reference: "confirmation"},
	{Name: "aula2_vs_confirmation", Stage: "aula2", Reference: "confirmation"},
	{Name: "aula3_vs_confirmation", Stage: "aula3", Reference: "confirmation"},
}

type Funnel struct {
	Pages       []*FunnelPage      `json:"pages"`
	Conversions map[string]float64 `json:"conversions"`
}

// Overview é a visão consolidada de funil e vendas de um período
type Overview struct {
	Range  string       `json:"range"`
	Funnel Funnel       `json:"funnel"`
	Sales  SalesSummary `json:"sales"`
}

// RangeLabel formata a quantidade de dias no formato aceito pela API (ex: 7d)
func RangeLabel(days int) string {
	return fmt.Sprintf("%dd", days)
}

// ViewsBySlug retorna as visualizações da página com o slug informado, ou 0 quando não existe
func ViewsBySlug(pages []*FunnelPage, slug string) float64 {
	for _, page := range pages {
		if page.Slug == slug {
			return page.Views
		}
	}
	return 0
}

// ConversionRate calcula stage/reference*100, retornando 0 quando a referência é zero
func ConversionRate(stageViews, referenceViews float64) float64 {
	if referenceViews == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(stageViews / referenceViews * 100)
}

// CalculateConversions calcula todas as conversões do funil
func CalculateConversions(pages []*FunnelPage, conversions []Conversion) map[string]float64 {
	result := make(map[string]float64, len(conversions))
	for _, c := range conversions {
		result[c.Name] = ConversionRate(ViewsBySlug(pages, c.Stage), ViewsBySlug(pages, c.Reference))
	}
	return result
}
