package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository sobre PostgreSQL.
// Las ofertas viven como JSONB en la fila del servicio.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio con sus ofertas.
func (r *ServiceRepo) Create(service *entity.Service) error {
	offers, err := json.Marshal(service.Offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}
	query := `
		INSERT INTO services (id, name, image_url, offers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.ImageURL, offers, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, name, image_url, offers, created_at, updated_at
		FROM services WHERE id = $1`
	var s entity.Service
	var offers []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ImageURL, &offers, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if err := json.Unmarshal(offers, &s.Offers); err != nil {
		return nil, fmt.Errorf("unmarshal offers: %w", err)
	}
	return &s, nil
}

// List catálogo completo, orden alfabético.
func (r *ServiceRepo) List() ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, image_url, offers, created_at, updated_at
		FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var s entity.Service
		var offers []byte
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageURL, &offers, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		if err := json.Unmarshal(offers, &s.Offers); err != nil {
			return nil, fmt.Errorf("unmarshal offers: %w", err)
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// Update reemplaza nombre, imagen y ofertas.
func (r *ServiceRepo) Update(service *entity.Service) error {
	offers, err := json.Marshal(service.Offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}
	query := `
		UPDATE services SET name = $2, image_url = $3, offers = $4, updated_at = now()
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, service.ID, service.Name, service.ImageURL, offers)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio del catálogo.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
