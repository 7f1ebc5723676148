package repository

import "github.com/jhoicas/Recargas-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia del catálogo.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	List() ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
}
