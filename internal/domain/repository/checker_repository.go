package repository

import "github.com/jhoicas/Recargas-api/internal/domain/entity"

// CheckerRepository define el puerto de persistencia del stock de checkers.
type CheckerRepository interface {
	Create(checker *entity.Checker) error
	GetByID(id string) (*entity.Checker, error)
	// GetForUpdate bloquea la fila del checker (SELECT FOR UPDATE) para la venta.
	GetForUpdate(id string) (*entity.Checker, error)
	// ListUnsold devuelve los checkers disponibles de un tipo.
	ListUnsold(checkerType string) ([]*entity.Checker, error)
	// List para admin: filtros vacíos = sin filtro.
	List(status, checkerType string) ([]*entity.Checker, error)
	MarkSold(id, soldTo string) error
	Update(checker *entity.Checker) error
	Delete(id string) error
	DeleteSold() (int64, error)
}

// PurchaseRepository define el puerto del historial de compras de checkers.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	ListByUser(userID string) ([]*entity.Purchase, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}
