package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un movimiento. La referencia tiene constraint único:
// una referencia repetida retorna domain.ErrDuplicate.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, reference, status, type, gateway, currency, created_at, verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.UserID, tx.Amount, tx.Reference, tx.Status, tx.Type, tx.Gateway,
		tx.Currency, tx.CreatedAt, tx.VerifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByReference busca un movimiento por su referencia.
func (r *TransactionRepo) GetByReference(reference string) (*entity.Transaction, error) {
	query := `
		SELECT id, user_id, amount, reference, status, type, gateway, currency, created_at, verified_at
		FROM transactions WHERE reference = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, reference).Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Reference, &t.Status, &t.Type, &t.Gateway,
		&t.Currency, &t.CreatedAt, &t.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return &t, nil
}

// ListByUser movimientos del usuario, más reciente primero.
func (r *TransactionRepo) ListByUser(userID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, amount, reference, status, type, gateway, currency, created_at, verified_at
		FROM transactions WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by user: %w", err)
	}
	return scanTransactions(rows)
}

// List movimientos globales, más reciente primero (admin).
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, amount, reference, status, type, gateway, currency, created_at, verified_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	var txs []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Amount, &t.Reference, &t.Status, &t.Type, &t.Gateway,
			&t.Currency, &t.CreatedAt, &t.VerifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}
