package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recargas-api/internal/application/auth"
	"github.com/jhoicas/Recargas-api/internal/application/checker"
	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/wallet"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// Ensure TxRunner implementa los runners de cada flujo.
var _ auth.AuthTxRunner = (*TxRunner)(nil)
var _ checkout.CheckoutTxRunner = (*TxRunner)(nil)
var _ wallet.DepositTxRunner = (*TxRunner)(nil)
var _ checker.PurchaseTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSignup inicia una transacción con repos de usuarios y balances (alta de cuenta + wallet en cero).
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	balanceRepo repository.BalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewBalanceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheckout inicia una transacción para la liquidación del checkout:
// débito condicional del wallet + orden + movimiento, todo o nada.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBalanceRepository(tx), NewOrderRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDeposit inicia una transacción para acreditar un depósito verificado.
func (r *TxRunner) RunDeposit(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBalanceRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción para la venta de un checker:
// débito + marca de vendido + entrada de historial + movimiento, todo o nada.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	checkerRepo repository.CheckerRepository,
	purchaseRepo repository.PurchaseRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBalanceRepository(tx), NewCheckerRepository(tx), NewPurchaseRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
