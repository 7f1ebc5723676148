package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// CatalogUseCase administración y lectura del catálogo de servicios.
type CatalogUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(serviceRepo repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{serviceRepo: serviceRepo}
}

// ListServices catálogo completo para el storefront.
func (uc *CatalogUseCase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// GetService un servicio por ID.
func (uc *CatalogUseCase) GetService(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	s, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(s), nil
}

// CreateService da de alta un servicio con sus ofertas (solo admin).
func (uc *CatalogUseCase) CreateService(ctx context.Context, in dto.SaveServiceRequest) (*dto.ServiceResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	offers, err := toOffers(in.Offers)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Service{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		Offers:    offers,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.serviceRepo.Create(s); err != nil {
		return nil, err
	}
	return toServiceResponse(s), nil
}

// UpdateService reemplaza nombre, imagen y el set completo de ofertas (solo admin).
func (uc *CatalogUseCase) UpdateService(ctx context.Context, id string, in dto.SaveServiceRequest) (*dto.ServiceResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	offers, err := toOffers(in.Offers)
	if err != nil {
		return nil, err
	}
	s.Name = in.Name
	s.ImageURL = in.ImageURL
	s.Offers = offers
	s.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(s); err != nil {
		return nil, err
	}
	return toServiceResponse(s), nil
}

// DeleteService elimina un servicio del catálogo (solo admin).
func (uc *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	s, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(id)
}

func toOffers(in []dto.OfferRequest) ([]entity.Offer, error) {
	offers := make([]entity.Offer, 0, len(in))
	for _, o := range in {
		if !o.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if o.Value.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		offers = append(offers, entity.Offer{Amount: o.Amount, Value: o.Value, Profit: o.Profit})
	}
	return offers, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	resp := &dto.ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		ImageURL: s.ImageURL,
		Offers:   make([]dto.OfferResponse, 0, len(s.Offers)),
	}
	for _, o := range s.Offers {
		resp.Offers = append(resp.Offers, dto.OfferResponse{
			Amount:    o.Amount,
			Value:     o.Value,
			ValueText: o.Value.DisplayText(),
			Profit:    o.Profit,
		})
	}
	return resp
}
