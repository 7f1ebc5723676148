package wallet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/wallet"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la regla de liquidación: se cobra exactamente lo confirmado por el
// vendor y el status de la orden sale de comparación decimal exacta.
// ──────────────────────────────────────────────────────────────────────────────

func item(amount string, apiStatus string) entity.OrderItem {
	return entity.OrderItem{
		Phone:     "0241234567",
		Amount:    decimal.RequireFromString(amount),
		APIStatus: apiStatus,
	}
}

func TestSummarize_TodoExitoso(t *testing.T) {
	items := []entity.OrderItem{
		item("10.00", entity.ItemStatusSuccess),
		item("5.50", entity.ItemStatusSuccess),
	}
	total := wallet.TotalRequested(items)

	charged, status := wallet.Summarize(items, total)

	assert.True(t, charged.Equal(decimal.RequireFromString("15.50")),
		"Se debe cobrar la suma completa cuando todo fue entregado, got %s", charged)
	assert.Equal(t, entity.OrderStatusCompleted, status)
}

func TestSummarize_ParcialCobraSoloConfirmado(t *testing.T) {
	items := []entity.OrderItem{
		item("10.00", entity.ItemStatusSuccess),
		item("5.50", entity.ItemStatusFailed),
		item("2.00", entity.ItemStatusSuccess),
	}
	total := wallet.TotalRequested(items)

	charged, status := wallet.Summarize(items, total)

	assert.True(t, charged.Equal(decimal.RequireFromString("12.00")),
		"Solo se cobran los ítems confirmados, got %s", charged)
	assert.Equal(t, entity.OrderStatusPartial, status)
}

func TestSummarize_TodoFallidoNoCobra(t *testing.T) {
	items := []entity.OrderItem{
		item("10.00", entity.ItemStatusFailed),
		item("5.50", entity.ItemStatusFailed),
	}

	charged, status := wallet.Summarize(items, wallet.TotalRequested(items))

	assert.True(t, charged.IsZero(), "Una orden sin entregas no cobra nada, got %s", charged)
	assert.Equal(t, entity.OrderStatusFailed, status)
}

func TestSummarize_CarritoVacioEsFallido(t *testing.T) {
	charged, status := wallet.Summarize(nil, decimal.Zero)

	assert.True(t, charged.IsZero())
	assert.Equal(t, entity.OrderStatusFailed, status)
}

// TestSummarize_ExactitudDecimal verifica que montos con centavos no caen en
// errores de redondeo flotante: 0.10 + 0.20 debe dar exactamente 0.30.
func TestSummarize_ExactitudDecimal(t *testing.T) {
	items := []entity.OrderItem{
		item("0.10", entity.ItemStatusSuccess),
		item("0.20", entity.ItemStatusSuccess),
	}
	total := wallet.TotalRequested(items)

	charged, status := wallet.Summarize(items, total)

	assert.True(t, charged.Equal(decimal.RequireFromString("0.30")),
		"La suma decimal debe ser exacta, got %s", charged)
	assert.Equal(t, entity.OrderStatusCompleted, status,
		"Con igualdad decimal exacta la orden debe quedar completed, no partial")
}

func TestTotalRequested(t *testing.T) {
	items := []entity.OrderItem{
		item("1.25", entity.ItemStatusSuccess),
		item("3.75", entity.ItemStatusFailed),
	}
	assert.True(t, wallet.TotalRequested(items).Equal(decimal.RequireFromString("5.00")))
}
