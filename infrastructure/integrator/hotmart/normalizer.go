package hotmart

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	hotmartdomain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart/domain"
)

// path é o caminho de um campo dentro do payload
type path []interface{}

// Caminhos testados em ordem para cada campo. O primeiro valor não vazio vence.
var (
	externalIDPaths = []path{
		{"transaction_id"},
		{"transaction"},
		{"purchase", "transaction"},
		{"data", "purchase", "transaction"},
		{"data", "transaction"},
		{"id"},
	}
	statusPaths = []path{
		{"status"},
		{"purchase", "status"},
		{"data", "purchase", "status"},
	}
	amountPaths = []path{
		{"amount"},
		{"purchase", "price", "value"},
		{"data", "purchase", "price", "value"},
		{"purchase", "value"},
	}
	currencyPaths = []path{
		{"currency"},
		{"purchase", "price", "currency"},
		{"data", "purchase", "price", "currency"},
		{"purchase", "currency"},
	}
	occurredAtPaths = []path{
		{"purchase", "date"},
		{"data", "purchase", "date"},
		{"event_date"},
		{"eventDate"},
	}
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Normalize extrai a compra de um payload da Hotmart
func Normalize(payload []byte) (*hotmartdomain.Purchase, error) {
	if !jsoniter.Valid(payload) {
		return nil, hotmartdomain.ErrInvalidPayload
	}

	externalID, ok := firstValue(payload, externalIDPaths, scalarValue)
	if !ok {
		return nil, hotmartdomain.ErrMissingTransactionID
	}

	purchase := &hotmartdomain.Purchase{ExternalID: externalID}

	if status, ok := firstValue(payload, statusPaths, scalarValue); ok {
		purchase.Status = &status
	}

	if currency, ok := firstValue(payload, currencyPaths, scalarValue); ok {
		purchase.Currency = &currency
	}

	if amount, ok := firstValue(payload, amountPaths, amountValue); ok {
		purchase.Amount = decimal.NewNullDecimal(amount)
	}

	if occurredAt, ok := firstValue(payload, occurredAtPaths, timeValue); ok {
		purchase.OccurredAt = &occurredAt
	}

	return purchase, nil
}

func firstValue[T any](payload []byte, paths []path, extract func(jsoniter.Any) (T, bool)) (T, bool) {
	for _, p := range paths {
		value := jsoniter.Get(payload, p...)
		if value.LastError() != nil {
			continue
		}
		if v, ok := extract(value); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// scalarValue aceita strings não vazias e números, convertidos para texto.
func scalarValue(value jsoniter.Any) (string, bool) {
	switch value.ValueType() {
	case jsoniter.StringValue:
		s := strings.TrimSpace(value.ToString())
		return s, s != ""
	case jsoniter.NumberValue:
		return strings.TrimSpace(value.ToString()), true
	}
	return "", false
}

// amountValue aceita números e strings numéricas. Valores não finitos são descartados.
func amountValue(value jsoniter.Any) (decimal.Decimal, bool) {
	var raw string
	switch value.ValueType() {
	case jsoniter.NumberValue, jsoniter.StringValue:
		raw = strings.TrimSpace(value.ToString())
	default:
		return decimal.Decimal{}, false
	}

	if raw == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// timeValue aceita datas em texto ou epoch em milissegundos (formato da Hotmart)
func timeValue(value jsoniter.Any) (time.Time, bool) {
	switch value.ValueType() {
	case jsoniter.NumberValue:
		return fromEpochMillis(value.ToString())
	case jsoniter.StringValue:
		raw := strings.TrimSpace(value.ToString())
		if raw == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC(), true
			}
		}
		return fromEpochMillis(raw)
	}
	return time.Time{}, false
}

func fromEpochMillis(raw string) (time.Time, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}
