package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// dbError anexa o código do postgres à mensagem quando disponível
func dbError(msg string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("%s: %w (código: %s)", msg, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
