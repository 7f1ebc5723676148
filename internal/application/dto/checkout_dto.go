package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// CheckoutRequest body para POST /api/checkout.
type CheckoutRequest struct {
	Cart   []CartItemRequest `json:"cart" validate:"required,min=1,dive"`
	Method string            `json:"method"` // por ahora solo "wallet"
}

// CartItemRequest una línea del carrito: teléfono destino, monto y selector de bundle.
type CartItemRequest struct {
	Phone       string             `json:"phone"`
	Amount      decimal.Decimal    `json:"amount"`
	Value       entity.BundleValue `json:"value_obj"`
	ServiceID   string             `json:"serviceId,omitempty"`
	ServiceName string             `json:"serviceName,omitempty"`
}

// CheckoutResponse desenlace del checkout con el detalle por línea.
type CheckoutResponse struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	OrderID       string             `json:"order_id"`
	Status        string             `json:"status"`
	ChargedAmount decimal.Decimal    `json:"charged_amount"`
	Items         []OrderItemOutcome `json:"items"`
}

// OrderItemOutcome desenlace de una línea (espejo de entity.OrderItem en la API).
type OrderItemOutcome struct {
	Phone       string             `json:"phone"`
	Amount      decimal.Decimal    `json:"amount"`
	Value       entity.BundleValue `json:"value_obj"`
	ValueText   string             `json:"value"`
	ServiceID   string             `json:"serviceId,omitempty"`
	ServiceName string             `json:"serviceName,omitempty"`
	TrxRef      string             `json:"trx_ref,omitempty"`
	APIStatus   string             `json:"api_status"`
	APIResponse any                `json:"api_response,omitempty"`
}

// OrderResponse orden en listados de historial.
type OrderResponse struct {
	ID            string             `json:"id"`
	OrderID       string             `json:"order_id"`
	Status        string             `json:"status"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	ChargedAmount decimal.Decimal    `json:"charged_amount"`
	PaidFrom      string             `json:"paid_from"`
	Items         []OrderItemOutcome `json:"items"`
	CreatedAt     string             `json:"created_at"`
}
