package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.ComplaintRepository = (*ComplaintRepo)(nil)

// ComplaintRepo implementación de ComplaintRepository sobre PostgreSQL.
type ComplaintRepo struct {
	q Querier
}

// NewComplaintRepository construye el adaptador de reclamos. Pasar pool o tx (Querier).
func NewComplaintRepository(q Querier) *ComplaintRepo {
	return &ComplaintRepo{q: q}
}

// Create registra un reclamo.
func (r *ComplaintRepo) Create(complaint *entity.Complaint) error {
	query := `
		INSERT INTO complaints (id, user_id, order_id, service_name, offer, order_date, description, whatsapp, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		complaint.ID, complaint.UserID, complaint.OrderID, complaint.ServiceName, complaint.Offer,
		complaint.OrderDate, complaint.Description, complaint.Whatsapp, complaint.Status, complaint.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

// List reclamos con filtros opcionales (cero = sin filtro), más reciente primero.
func (r *ComplaintRepo) List(filter repository.ComplaintFilter) ([]*entity.Complaint, error) {
	query := `
		SELECT id, user_id, order_id, service_name, offer, order_date, description, whatsapp, status, submitted_at
		FROM complaints
		WHERE ($1 = '' OR user_id = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3::timestamptz IS NULL OR submitted_at >= $3)
		  AND ($4::timestamptz IS NULL OR submitted_at < $4)
		ORDER BY submitted_at DESC`
	var from, to any
	if !filter.From.IsZero() {
		from = filter.From
	}
	if !filter.To.IsZero() {
		to = filter.To
	}
	rows, err := r.q.Query(context.Background(), query, filter.UserID, filter.Status, from, to)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*entity.Complaint
	for rows.Next() {
		var c entity.Complaint
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.OrderID, &c.ServiceName, &c.Offer,
			&c.OrderDate, &c.Description, &c.Whatsapp, &c.Status, &c.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		complaints = append(complaints, &c)
	}
	return complaints, rows.Err()
}

// UpdateStatus cambia el estado de un reclamo.
func (r *ComplaintRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE complaints SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update complaint status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
