package checkout

import (
	"context"

	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta una función dentro de una transacción que incluye
// los repos del cierre de orden: saldo, órdenes y transacciones.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
