package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
// Los ítems del carrito con su desenlace viven como JSONB en la fila.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden completa con sus ítems.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, user_id, order_id, items, total_amount, charged_amount, status, paid_from, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.OrderID, items, order.TotalAmount, order.ChargedAmount,
		order.Status, order.PaidFrom, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por su ID interno.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, order_id, items, total_amount, charged_amount, status, paid_from, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.OrderID, &items, &o.TotalAmount, &o.ChargedAmount,
		&o.Status, &o.PaidFrom, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}

// ListByUser órdenes del usuario, más reciente primero.
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, order_id, items, total_amount, charged_amount, status, paid_from, created_at, updated_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return scanOrders(rows)
}

// List listado global con filtro opcional de status, más reciente primero.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, order_id, items, total_amount, charged_amount, status, paid_from, created_at, updated_at
		FROM orders WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		var items []byte
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderID, &items, &o.TotalAmount, &o.ChargedAmount,
			&o.Status, &o.PaidFrom, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Count órdenes totales o por status.
func (r *OrderRepo) Count(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE ($1 = '' OR status = $1)`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// SumCharged suma lo cobrado en todas las órdenes.
func (r *OrderRepo) SumCharged() (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(charged_amount), 0) FROM orders`).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum charged: %w", err)
	}
	return sum, nil
}

// UpdateStatus corrección manual del status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
