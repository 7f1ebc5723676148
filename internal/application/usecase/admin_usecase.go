package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Recargas-api/internal/application/auth"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/application/wallet"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// AdminUseCase pantallas de administración: dashboard, clientes, balances y movimientos.
type AdminUseCase struct {
	userRepo    repository.UserRepository
	balanceRepo repository.BalanceRepository
	orderRepo   repository.OrderRepository
	txRepo      repository.TransactionRepository
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(userRepo repository.UserRepository, balanceRepo repository.BalanceRepository, orderRepo repository.OrderRepository, txRepo repository.TransactionRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, balanceRepo: balanceRepo, orderRepo: orderRepo, txRepo: txRepo}
}

// Dashboard métricas agregadas del panel.
func (uc *AdminUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	customers, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.Count("")
	if err != nil {
		return nil, err
	}
	completed, err := uc.orderRepo.Count(entity.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	partial, err := uc.orderRepo.Count(entity.OrderStatusPartial)
	if err != nil {
		return nil, err
	}
	failed, err := uc.orderRepo.Count(entity.OrderStatusFailed)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.orderRepo.SumCharged()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Customers:       customers,
		OrdersTotal:     total,
		OrdersCompleted: completed,
		OrdersPartial:   partial,
		OrdersFailed:    failed,
		Revenue:         revenue,
	}, nil
}

// ListCustomers listado de usuarios registrados.
func (uc *AdminUseCase) ListCustomers(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// UpdateCustomerStatus activa/suspende una cuenta. Un usuario suspendido no
// puede hacer login; sus órdenes y saldo quedan intactos.
func (uc *AdminUseCase) UpdateCustomerStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.UserStatusActive, entity.UserStatusInactive, entity.UserStatusSuspended:
	default:
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.UpdateStatus(id, status)
}

// ListTransactions movimientos de todos los usuarios, más reciente primero.
func (uc *AdminUseCase) ListTransactions(ctx context.Context, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return wallet.ToTransactionResponses(txs), nil
}

// ListBalances todos los wallets con los datos del dueño.
func (uc *AdminUseCase) ListBalances(ctx context.Context) ([]dto.AdminBalanceResponse, error) {
	balances, err := uc.balanceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminBalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp := dto.AdminBalanceResponse{
			UserID:    b.UserID,
			Amount:    b.Amount,
			Currency:  b.Currency,
			UpdatedAt: b.UpdatedAt,
		}
		if user, _ := uc.userRepo.GetByID(b.UserID); user != nil {
			resp.Username = user.Username
			resp.Email = user.Email
		}
		out = append(out, resp)
	}
	return out, nil
}

// SetBalance fija el saldo absoluto de un wallet (corrección manual).
// No genera movimiento en transactions: es una intervención de operador, no un depósito.
func (uc *AdminUseCase) SetBalance(ctx context.Context, userID string, in dto.SetBalanceRequest) (*dto.BalanceResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	bal := &entity.Balance{
		UserID:    userID,
		Amount:    in.Amount,
		Currency:  "GHS",
		UpdatedAt: time.Now(),
	}
	if err := uc.balanceRepo.Upsert(bal); err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		UserID:    bal.UserID,
		Amount:    bal.Amount,
		Currency:  bal.Currency,
		UpdatedAt: bal.UpdatedAt,
	}, nil
}
