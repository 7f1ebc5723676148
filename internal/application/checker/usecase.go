package checker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta la venta de un checker (débito + marca de vendido +
// entrada de historial + movimiento) en una sola transacción.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		checkerRepo repository.CheckerRepository,
		purchaseRepo repository.PurchaseRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// CheckerUseCase stock y venta de checkers de resultados.
type CheckerUseCase struct {
	checkerRepo  repository.CheckerRepository
	purchaseRepo repository.PurchaseRepository
	txRunner     PurchaseTxRunner
}

// NewCheckerUseCase construye el caso de uso de checkers.
func NewCheckerUseCase(checkerRepo repository.CheckerRepository, purchaseRepo repository.PurchaseRepository, txRunner PurchaseTxRunner) *CheckerUseCase {
	return &CheckerUseCase{checkerRepo: checkerRepo, purchaseRepo: purchaseRepo, txRunner: txRunner}
}

// ListAvailable checkers en stock de un tipo, sin exponer el PIN.
func (uc *CheckerUseCase) ListAvailable(ctx context.Context, checkerType string) ([]dto.CheckerResponse, error) {
	if checkerType != entity.CheckerTypeWassce && checkerType != entity.CheckerTypeBece {
		return nil, domain.ErrInvalidInput
	}
	checkers, err := uc.checkerRepo.ListUnsold(checkerType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckerResponse, 0, len(checkers))
	for _, c := range checkers {
		out = append(out, dto.CheckerResponse{ID: c.ID, Type: c.Type, Amount: c.Amount})
	}
	return out, nil
}

// Purchase vende un checker a un cliente: bloquea la fila del checker y la del
// wallet, re-verifica que siga sin vender y que el saldo alcance, debita y
// registra la compra. Dos compradores concurrentes del mismo checker quedan
// serializados por el FOR UPDATE; el segundo ve status sold y recibe el error.
func (uc *CheckerUseCase) Purchase(ctx context.Context, userID string, in dto.PurchaseCheckerRequest) (*dto.PurchaseResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	var purchase *entity.Purchase
	err := uc.txRunner.RunPurchase(ctx, func(
		balanceRepo repository.BalanceRepository,
		checkerRepo repository.CheckerRepository,
		purchaseRepo repository.PurchaseRepository,
		txRepo repository.TransactionRepository,
	) error {
		chk, err := checkerRepo.GetForUpdate(in.CheckerID)
		if err != nil {
			return err
		}
		if chk == nil {
			return domain.ErrNotFound
		}
		if chk.Status != entity.CheckerStatusNotSold {
			return domain.ErrCheckerSold
		}
		bal, err := balanceRepo.GetForUpdate(userID)
		if err != nil {
			return err
		}
		if bal.Amount.LessThan(chk.Amount) {
			return domain.ErrInsufficientBalance
		}
		now := time.Now()
		bal.UserID = userID
		bal.Amount = bal.Amount.Sub(chk.Amount)
		bal.UpdatedAt = now
		if err := balanceRepo.Upsert(bal); err != nil {
			return err
		}
		if err := checkerRepo.MarkSold(chk.ID, userID); err != nil {
			return err
		}
		purchase = &entity.Purchase{
			ID:          uuid.New().String(),
			UserID:      userID,
			CheckerID:   chk.ID,
			Type:        chk.Type,
			Amount:      chk.Amount,
			Message:     chk.Message,
			PurchasedAt: now,
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		// El id de la compra sirve de referencia: único por venta.
		return txRepo.Create(&entity.Transaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Amount:     chk.Amount,
			Reference:  purchase.ID,
			Status:     entity.TransactionStatusSuccess,
			Type:       entity.TransactionTypePurchase,
			Gateway:    entity.GatewayWallet,
			Currency:   "GHS",
			CreatedAt:  now,
			VerifiedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// ListPurchases historial de compras del cliente (incluye el PIN ya comprado).
func (uc *CheckerUseCase) ListPurchases(ctx context.Context, userID string) ([]dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

// --- Admin ---

// CreateChecker carga un checker nuevo al stock.
func (uc *CheckerUseCase) CreateChecker(ctx context.Context, in dto.SaveCheckerRequest) (*dto.AdminCheckerResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	chk := &entity.Checker{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Message:   in.Message,
		Amount:    in.Amount,
		Profit:    in.Profit,
		Status:    entity.CheckerStatusNotSold,
		CreatedAt: time.Now(),
	}
	if err := uc.checkerRepo.Create(chk); err != nil {
		return nil, err
	}
	return toAdminCheckerResponse(chk), nil
}

// UpdateChecker edita un checker no vendido.
func (uc *CheckerUseCase) UpdateChecker(ctx context.Context, id string, in dto.SaveCheckerRequest) (*dto.AdminCheckerResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	chk, err := uc.checkerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chk == nil {
		return nil, domain.ErrNotFound
	}
	if chk.Status == entity.CheckerStatusSold {
		return nil, domain.ErrCheckerSold
	}
	chk.Type = in.Type
	chk.Message = in.Message
	chk.Amount = in.Amount
	chk.Profit = in.Profit
	if err := uc.checkerRepo.Update(chk); err != nil {
		return nil, err
	}
	return toAdminCheckerResponse(chk), nil
}

// DeleteChecker elimina un checker del stock.
func (uc *CheckerUseCase) DeleteChecker(ctx context.Context, id string) error {
	chk, err := uc.checkerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if chk == nil {
		return domain.ErrNotFound
	}
	return uc.checkerRepo.Delete(id)
}

// ListCheckers listado completo para admin, con filtros opcionales.
func (uc *CheckerUseCase) ListCheckers(ctx context.Context, status, checkerType string) ([]dto.AdminCheckerResponse, error) {
	checkers, err := uc.checkerRepo.List(status, checkerType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminCheckerResponse, 0, len(checkers))
	for _, c := range checkers {
		out = append(out, *toAdminCheckerResponse(c))
	}
	return out, nil
}

// PurgeSold elimina del stock los checkers ya vendidos; devuelve cuántos borró.
// El historial de compras conserva el PIN entregado.
func (uc *CheckerUseCase) PurgeSold(ctx context.Context) (int64, error) {
	return uc.checkerRepo.DeleteSold()
}

// ListAllPurchases historial global de ventas de checkers (admin).
func (uc *CheckerUseCase) ListAllPurchases(ctx context.Context, page dto.PageRequest) ([]dto.PurchaseResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:          p.ID,
		CheckerID:   p.CheckerID,
		Type:        p.Type,
		Amount:      p.Amount,
		Message:     p.Message,
		PurchasedAt: p.PurchasedAt,
	}
}

func toAdminCheckerResponse(c *entity.Checker) *dto.AdminCheckerResponse {
	return &dto.AdminCheckerResponse{
		ID:        c.ID,
		Type:      c.Type,
		Message:   c.Message,
		Amount:    c.Amount,
		Profit:    c.Profit,
		Status:    c.Status,
		SoldTo:    c.SoldTo,
		SoldAt:    c.SoldAt,
		CreatedAt: c.CreatedAt,
	}
}
