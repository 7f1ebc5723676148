package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y gateways de movimiento de dinero.
const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypePurchase = "purchase"

	GatewayWallet   = "Wallet"
	GatewayPaystack = "Paystack"

	TransactionStatusSuccess = "success"
)

// Transaction registra un movimiento de dinero: un depósito verificado por la
// pasarela o el cobro de un checkout. La referencia es única: un depósito
// re-verificado con la misma referencia no acredita dos veces.
type Transaction struct {
	ID         string
	UserID     string
	Amount     decimal.Decimal
	Reference  string // referencia de la pasarela, o el id de la orden/compra
	Status     string
	Type       string // deposit | purchase
	Gateway    string // Paystack | Wallet
	Currency   string // GHS
	CreatedAt  time.Time
	VerifiedAt time.Time
}
