package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceHotmart = "hotmart"
)

// PurchaseEvent representa uma transação de compra recebida de uma plataforma de pagamento
type PurchaseEvent struct {
	ID         int64               `json:"id" db:"id"`
	Source     string              `json:"source" db:"source"`
	ExternalID string              `json:"external_id" db:"external_id"`
	Status     *string             `json:"status" db:"status"`
	Amount     decimal.NullDecimal `json:"amount" db:"amount"`
	Currency   *string             `json:"currency" db:"currency"`
	OccurredAt *time.Time          `json:"occurred_at" db:"occurred_at"`
	ReceivedAt time.Time           `json:"received_at" db:"received_at"`
	RawPayload json.RawMessage     `json:"raw_payload" db:"raw_payload"`
	UpdatedAt  time.Time           `json:"updated_at" db:"updated_at"`
}

// SalesSummary contém o total de vendas e a receita de um período
type SalesSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}
