package hotmart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hotmartdomain "github.com/vfg2006/launch-metrics-api/infrastructure/integrator/hotmart/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		validate func(t *testing.T, p *hotmartdomain.Purchase)
	}{
		{
			name:    "Formato plano",
			payload: `{"transaction_id":"HP-1","status":"approved","amount":97.5,"currency":"BRL","event_date":"2024-03-10T12:00:00Z"}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.Equal(t, "HP-1", p.ExternalID)
				require.NotNil(t, p.Status)
				assert.Equal(t, "approved", *p.Status)
				require.True(t, p.Amount.Valid)
				assert.Equal(t, "97.5", p.Amount.Decimal.String())
				require.NotNil(t, p.Currency)
				assert.Equal(t, "BRL", *p.Currency)
				require.NotNil(t, p.OccurredAt)
				assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), *p.OccurredAt)
			},
		},
		{
			name: "Formato aninhado em data.purchase",
			payload: `{"id":"evt-1","event":"PURCHASE_APPROVED","data":{"purchase":{"transaction":"HP-2","status":"APPROVED",
				"price":{"value":"197.00","currency":"USD"},"date":1710072000000}}}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.Equal(t, "HP-2", p.ExternalID)
				assert.Equal(t, "APPROVED", *p.Status)
				assert.Equal(t, "197", p.Amount.Decimal.String())
				assert.Equal(t, "USD", *p.Currency)
				require.NotNil(t, p.OccurredAt)
				assert.Equal(t, time.UnixMilli(1710072000000).UTC(), *p.OccurredAt)
			},
		},
		{
			name:    "Formato purchase com valor direto",
			payload: `{"purchase":{"transaction":"HP-3","value":10,"currency":"BRL","date":"2024-03-10"}}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.Equal(t, "HP-3", p.ExternalID)
				assert.Nil(t, p.Status)
				assert.Equal(t, "10", p.Amount.Decimal.String())
				assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *p.OccurredAt)
			},
		},
		{
			name:    "Id numérico no campo id",
			payload: `{"id":123456}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.Equal(t, "123456", p.ExternalID)
			},
		},
		{
			name:    "Primeiro valor não vazio vence",
			payload: `{"transaction_id":"","transaction":"HP-4","status":"","purchase":{"status":"refunded"}}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.Equal(t, "HP-4", p.ExternalID)
				assert.Equal(t, "refunded", *p.Status)
			},
		},
		{
			name:    "Status e moeda numéricos viram texto",
			payload: `{"transaction_id":"HP-6","status":1,"currency":986,"purchase":{"status":"approved","currency":"BRL"}}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				require.NotNil(t, p.Status)
				assert.Equal(t, "1", *p.Status)
				require.NotNil(t, p.Currency)
				assert.Equal(t, "986", *p.Currency)
			},
		},
		{
			name:    "Valor e data inválidos viram nulos",
			payload: `{"transaction_id":"HP-5","amount":"abc","event_date":"ontem"}`,
			validate: func(t *testing.T, p *hotmartdomain.Purchase) {
				assert.False(t, p.Amount.Valid)
				assert.Nil(t, p.OccurredAt)
				assert.Nil(t, p.Currency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase, err := Normalize([]byte(tt.payload))
			require.NoError(t, err)
			tt.validate(t, purchase)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected error
	}{
		{name: "JSON inválido", payload: `{"transaction_id":`, expected: hotmartdomain.ErrInvalidPayload},
		{name: "Sem id", payload: `{"status":"approved","amount":10}`, expected: hotmartdomain.ErrMissingTransactionID},
		{name: "Id vazio", payload: `{"transaction_id":"   "}`, expected: hotmartdomain.ErrMissingTransactionID},
		{name: "Payload que não é objeto", payload: `[1,2,3]`, expected: hotmartdomain.ErrMissingTransactionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.payload))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
