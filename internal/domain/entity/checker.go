package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de checkers de resultados de examen.
const (
	CheckerTypeWassce = "wassce"
	CheckerTypeBece   = "bece"

	CheckerStatusNotSold = "not_sold"
	CheckerStatusSold    = "sold"
)

// Checker es un PIN de verificación de resultados (WASSCE/BECE) cargado por un
// admin y vendido una sola vez desde el stock.
type Checker struct {
	ID        string
	Type      string // wassce | bece
	Message   string // el texto con serial y PIN que recibe el comprador
	Amount    decimal.Decimal
	Profit    decimal.Decimal
	Status    string // not_sold | sold
	SoldTo    string // user id del comprador (vacío si no vendido)
	SoldAt    *time.Time
	CreatedAt time.Time
}

// Purchase es la entrada del historial de compras de checkers.
type Purchase struct {
	ID          string
	UserID      string
	CheckerID   string
	Type        string
	Amount      decimal.Decimal
	Message     string
	PurchasedAt time.Time
}
