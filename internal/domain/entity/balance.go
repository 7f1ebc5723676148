package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance es el wallet prepago de un usuario (uno a uno con User).
// El monto nunca queda negativo: el débito se valida dentro de la misma
// transacción que lo aplica (ver los casos de uso de checkout y checkers).
type Balance struct {
	UserID    string
	Amount    decimal.Decimal
	Currency  string // GHS
	UpdatedAt time.Time
}
