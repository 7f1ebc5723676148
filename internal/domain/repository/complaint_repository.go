package repository

import (
	"time"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// ComplaintFilter filtros opcionales de listado (cero = sin filtro).
type ComplaintFilter struct {
	UserID string
	Status string
	From   time.Time
	To     time.Time
}

// ComplaintRepository define el puerto de persistencia de reclamos.
type ComplaintRepository interface {
	Create(complaint *entity.Complaint) error
	List(filter ComplaintFilter) ([]*entity.Complaint, error)
	UpdateStatus(id, status string) error
}
