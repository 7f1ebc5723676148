package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de checkout.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	// List para admin: status vacío = todas; orden descendente por fecha.
	List(status string, limit, offset int) ([]*entity.Order, error)
	Count(status string) (int, error)
	// SumCharged suma lo cobrado en todas las órdenes (ingreso bruto).
	SumCharged() (decimal.Decimal, error)
	UpdateStatus(id, status string) error
}
