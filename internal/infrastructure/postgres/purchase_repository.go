package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador del historial de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create registra una compra de checker.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, checker_id, type, amount, message, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.CheckerID, purchase.Type,
		purchase.Amount, purchase.Message, purchase.PurchasedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListByUser compras del usuario, más reciente primero.
func (r *PurchaseRepo) ListByUser(userID string) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, checker_id, type, amount, message, purchased_at
		FROM purchases WHERE user_id = $1
		ORDER BY purchased_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by user: %w", err)
	}
	return scanPurchases(rows)
}

// List historial global, más reciente primero (admin).
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, checker_id, type, amount, message, purchased_at
		FROM purchases
		ORDER BY purchased_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return scanPurchases(rows)
}

func scanPurchases(rows pgx.Rows) ([]*entity.Purchase, error) {
	defer rows.Close()
	var purchases []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CheckerID, &p.Type, &p.Amount, &p.Message, &p.PurchasedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
