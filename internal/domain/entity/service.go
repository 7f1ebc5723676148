package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es una entrada del catálogo (ej. "MTN Data", "AT BigTime") con sus ofertas.
// Las ofertas viven embebidas en la fila del servicio (columna JSONB).
type Service struct {
	ID        string
	Name      string
	ImageURL  string
	Offers    []Offer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Offer es una oferta vendible dentro de un servicio: precio al cliente,
// descriptor de valor (ver BundleValue) y margen del revendedor.
type Offer struct {
	Amount decimal.Decimal `json:"amount"`
	Value  BundleValue     `json:"value"`
	Profit decimal.Decimal `json:"profit"`
}
