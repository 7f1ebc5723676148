package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// ComplaintUseCase reclamos de clientes sobre órdenes.
type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	orderRepo     repository.OrderRepository
}

// NewComplaintUseCase construye el caso de uso de reclamos.
func NewComplaintUseCase(complaintRepo repository.ComplaintRepository, orderRepo repository.OrderRepository) *ComplaintUseCase {
	return &ComplaintUseCase{complaintRepo: complaintRepo, orderRepo: orderRepo}
}

// CreateComplaint registra un reclamo sobre una orden del propio cliente.
// Servicio, oferta y fecha se copian de la orden para que el reclamo sea
// legible aunque el catálogo cambie después.
func (uc *ComplaintUseCase) CreateComplaint(ctx context.Context, userID string, in dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	serviceName := ""
	offer := ""
	if len(order.Items) > 0 {
		serviceName = order.Items[0].ServiceName
		offer = order.Items[0].Value.DisplayText()
	}
	complaint := &entity.Complaint{
		ID:          uuid.New().String(),
		UserID:      userID,
		OrderID:     order.ID,
		ServiceName: serviceName,
		Offer:       offer,
		OrderDate:   order.CreatedAt,
		Description: in.Description,
		Whatsapp:    in.Whatsapp,
		Status:      entity.ComplaintStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := uc.complaintRepo.Create(complaint); err != nil {
		return nil, err
	}
	return toComplaintResponse(complaint), nil
}

// ListComplaints reclamos del propio cliente, más reciente primero.
func (uc *ComplaintUseCase) ListComplaints(ctx context.Context, userID string) ([]dto.ComplaintResponse, error) {
	complaints, err := uc.complaintRepo.List(repository.ComplaintFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	return toComplaintResponses(complaints), nil
}

// ListAllComplaints listado para admin con filtros de status y rango de fechas.
func (uc *ComplaintUseCase) ListAllComplaints(ctx context.Context, in dto.ComplaintFilterRequest) ([]dto.ComplaintResponse, error) {
	filter := repository.ComplaintFilter{Status: in.Status}
	if in.StartDate != "" {
		from, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = from
	}
	if in.EndDate != "" {
		to, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// El filtro es inclusivo en el día final.
		filter.To = to.Add(24 * time.Hour)
	}
	complaints, err := uc.complaintRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return toComplaintResponses(complaints), nil
}

// ResolveComplaint marca un reclamo como resuelto (admin).
func (uc *ComplaintUseCase) ResolveComplaint(ctx context.Context, id string) error {
	return uc.complaintRepo.UpdateStatus(id, entity.ComplaintStatusResolved)
}

func toComplaintResponse(c *entity.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		ID:          c.ID,
		OrderID:     c.OrderID,
		ServiceName: c.ServiceName,
		Offer:       c.Offer,
		OrderDate:   c.OrderDate,
		Description: c.Description,
		Whatsapp:    c.Whatsapp,
		Status:      c.Status,
		SubmittedAt: c.SubmittedAt,
	}
}

func toComplaintResponses(cs []*entity.Complaint) []dto.ComplaintResponse {
	out := make([]dto.ComplaintResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, *toComplaintResponse(c))
	}
	return out
}
