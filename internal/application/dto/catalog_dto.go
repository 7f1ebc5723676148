package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// SaveServiceRequest body para crear/actualizar un servicio del catálogo.
type SaveServiceRequest struct {
	Name     string         `json:"name" validate:"required"`
	ImageURL string         `json:"image_url" validate:"required"`
	Offers   []OfferRequest `json:"offers" validate:"dive"`
}

// OfferRequest una oferta: monto, descriptor de valor y margen.
// Value acepta string plano o el objeto {"id","volume"} / {"network_id","volume"}.
type OfferRequest struct {
	Amount decimal.Decimal    `json:"amount"`
	Value  entity.BundleValue `json:"value"`
	Profit decimal.Decimal    `json:"profit"`
}

// ServiceResponse servicio con ofertas y texto amigable por oferta.
type ServiceResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	ImageURL string          `json:"image_url"`
	Offers   []OfferResponse `json:"offers"`
}

// OfferResponse oferta con value_text calculado para el storefront.
type OfferResponse struct {
	Amount    decimal.Decimal    `json:"amount"`
	Value     entity.BundleValue `json:"value"`
	ValueText string             `json:"value_text"`
	Profit    decimal.Decimal    `json:"profit"`
}
