package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateStatusRequest cambio de status genérico (órdenes, reclamos, clientes).
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetBalanceRequest fija el saldo de un wallet (pantalla admin de balances).
type SetBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AdminBalanceResponse balance con los datos del dueño.
type AdminBalanceResponse struct {
	UserID    string          `json:"user_id"`
	Username  string          `json:"username"`
	Email     string          `json:"email,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DashboardResponse métricas del panel de admin.
type DashboardResponse struct {
	Customers       int             `json:"customers"`
	OrdersTotal     int             `json:"orders_total"`
	OrdersCompleted int             `json:"orders_completed"`
	OrdersPartial   int             `json:"orders_partial"`
	OrdersFailed    int             `json:"orders_failed"`
	Revenue         decimal.Decimal `json:"revenue"` // suma de charged_amount
}
