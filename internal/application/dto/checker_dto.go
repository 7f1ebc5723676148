package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseCheckerRequest body para POST /api/checkers/purchase.
type PurchaseCheckerRequest struct {
	CheckerID string `json:"checker_id" validate:"required"`
}

// CheckerResponse checker disponible (sin el PIN para clientes; Message solo
// se entrega tras la compra o en listados de admin).
type CheckerResponse struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status,omitempty"`
}

// SaveCheckerRequest alta/edición de checker (admin).
type SaveCheckerRequest struct {
	Type    string          `json:"type" validate:"required,oneof=wassce bece"`
	Message string          `json:"message" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Profit  decimal.Decimal `json:"profit"`
}

// AdminCheckerResponse checker completo para las pantallas de admin.
type AdminCheckerResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Amount    decimal.Decimal `json:"amount"`
	Profit    decimal.Decimal `json:"profit"`
	Status    string          `json:"status"`
	SoldTo    string          `json:"sold_to,omitempty"`
	SoldAt    *time.Time      `json:"sold_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PurchaseResponse entrada del historial de compras de checkers.
type PurchaseResponse struct {
	ID          string          `json:"id"`
	CheckerID   string          `json:"checker_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Message     string          `json:"message"`
	PurchasedAt time.Time       `json:"purchased_at"`
}
