package hotmartdomain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayload       = errors.New("payload inválido")
	ErrMissingTransactionID = errors.New("missing transaction id")
)

// Purchase é a compra extraída de um webhook da Hotmart, independente do formato do payload
type Purchase struct {
	ExternalID string
	Status     *string
	Amount     decimal.NullDecimal
	Currency   *string
	OccurredAt *time.Time
}
