package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de checkout.
const (
	OrderStatusCompleted = "completed" // todos los ítems confirmados por el vendor
	OrderStatusPartial   = "partial"   // algunos confirmados; se cobró solo lo confirmado
	OrderStatusFailed    = "failed"    // ningún ítem procesado; no se cobró nada
)

// Estados por ítem dentro de la orden.
const (
	ItemStatusSuccess = "success"
	ItemStatusFailed  = "failed"
	ItemStatusSkipped = "skipped" // faltó teléfono o selector; no se llamó al vendor
)

// Order representa un intento de checkout completo, con el desenlace de cada
// línea embebido (columna JSONB). Inmutable tras crearse, salvo el status que
// un admin puede corregir.
type Order struct {
	ID            string
	UserID        string
	OrderID       string // identificador legible, ej. "NAN48213"
	Items         []OrderItem
	TotalAmount   decimal.Decimal // lo que el cliente pidió comprar
	ChargedAmount decimal.Decimal // lo que realmente se debitó
	Status        string          // completed | partial | failed
	PaidFrom      string          // método de pago, ej. "wallet"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem es el desenlace de una línea del carrito. Conserva la respuesta
// cruda del vendor para auditoría y para que el cliente vea qué línea falló.
type OrderItem struct {
	Phone       string          `json:"phone"`
	Amount      decimal.Decimal `json:"amount"`
	Value       BundleValue     `json:"value"`
	ServiceID   string          `json:"serviceId,omitempty"`
	ServiceName string          `json:"serviceName,omitempty"`
	TrxRef      string          `json:"trx_ref,omitempty"`
	APIStatus   string          `json:"api_status"` // success | failed | skipped
	APIResponse json.RawMessage `json:"api_response,omitempty"`
}
