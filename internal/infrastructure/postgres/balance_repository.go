package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador del wallet. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el saldo de un usuario; sin fila devuelve el balance en cero.
func (r *BalanceRepo) Get(userID string) (*entity.Balance, error) {
	return r.get(userID, "")
}

// GetForUpdate obtiene el saldo y bloquea la fila para update (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción.
func (r *BalanceRepo) GetForUpdate(userID string) (*entity.Balance, error) {
	return r.get(userID, " FOR UPDATE")
}

func (r *BalanceRepo) get(userID, suffix string) (*entity.Balance, error) {
	query := `
		SELECT user_id, amount, currency, updated_at
		FROM balances WHERE user_id = $1` + suffix
	var b entity.Balance
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&b.UserID, &b.Amount, &b.Currency, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Balance{UserID: userID, Amount: decimal.Zero, Currency: "GHS"}, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza el saldo del usuario.
func (r *BalanceRepo) Upsert(balance *entity.Balance) error {
	query := `
		INSERT INTO balances (user_id, amount, currency, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id)
		DO UPDATE SET amount = EXCLUDED.amount, currency = EXCLUDED.currency, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.UserID, balance.Amount, balance.Currency)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// List todos los wallets, mayor saldo primero.
func (r *BalanceRepo) List() ([]*entity.Balance, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT user_id, amount, currency, updated_at
		FROM balances ORDER BY amount DESC`)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var balances []*entity.Balance
	for rows.Next() {
		var b entity.Balance
		if err := rows.Scan(&b.UserID, &b.Amount, &b.Currency, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}
