package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// OrderUseCase historial de órdenes (lectura; el alta la hace el checkout).
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso de historial.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// ListByUser órdenes del cliente, más reciente primero.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// Get una orden por ID; los clientes solo ven las propias.
func (uc *OrderUseCase) Get(ctx context.Context, userID, role, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdmin && order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// ListAll listado global con filtro de status (admin).
func (uc *OrderUseCase) ListAll(ctx context.Context, status string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateStatus corrección manual del status de una orden (admin).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.OrderStatusCompleted, entity.OrderStatusPartial, entity.OrderStatusFailed:
	default:
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		OrderID:       o.OrderID,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		ChargedAmount: o.ChargedAmount,
		PaidFrom:      o.PaidFrom,
		Items:         checkout.ToOrderItemOutcomes(o.Items),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
