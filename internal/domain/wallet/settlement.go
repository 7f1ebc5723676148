package wallet

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// Summarize implementa la regla de liquidación del checkout (servicio de dominio):
// se cobra exactamente la suma de los ítems confirmados por el vendor, nunca el
// total pedido. El status sale de comparación decimal exacta, no de floats:
//
//	cobrado == 0        -> failed
//	cobrado == pedido   -> completed
//	en cualquier otro caso -> partial
func Summarize(items []entity.OrderItem, totalRequested decimal.Decimal) (charged decimal.Decimal, status string) {
	charged = decimal.Zero
	for _, it := range items {
		if it.APIStatus == entity.ItemStatusSuccess {
			charged = charged.Add(it.Amount)
		}
	}
	switch {
	case !charged.IsPositive():
		return decimal.Zero, entity.OrderStatusFailed
	case charged.Equal(totalRequested):
		return charged, entity.OrderStatusCompleted
	default:
		return charged, entity.OrderStatusPartial
	}
}

// TotalRequested suma los montos pedidos en el carrito.
func TotalRequested(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
