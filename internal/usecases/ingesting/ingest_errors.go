package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrMissingTransactionID = errors.New("missing transaction id")
	ErrInvalidPayload       = errors.New("invalid payload")
	ErrStorePurchase        = errors.New("error storing purchase event")
)

// IngestError carrega o código de API e a transação envolvida, quando conhecida
type IngestError struct {
	Err        error
	Code       string
	ExternalID string
	Details    string
}

func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func NewIngestError(err error, code string, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewIngestErrorWithID(err error, code string, externalID string, details string) *IngestError {
	return &IngestError{
		Err:        err,
		Code:       code,
		ExternalID: externalID,
		Details:    details,
	}
}
