package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse saldo actual del wallet.
type BalanceResponse struct {
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VerifyDepositRequest query para GET /api/wallet/verify.
type VerifyDepositRequest struct {
	Reference string          `query:"reference" validate:"required"`
	Amount    decimal.Decimal `query:"amount"`
}

// DepositResponse resultado de la verificación + acreditación.
type DepositResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionResponse movimiento de dinero en listados.
type TransactionResponse struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
	Status     string          `json:"status"`
	Type       string          `json:"type"`
	Gateway    string          `json:"gateway"`
	Currency   string          `json:"currency"`
	VerifiedAt time.Time       `json:"verified_at"`
}
