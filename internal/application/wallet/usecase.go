package wallet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/paystack"
)

// DepositTxRunner ejecuta la acreditación (crédito + movimiento) en una transacción.
type DepositTxRunner interface {
	RunDeposit(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// WalletUseCase saldo, verificación de depósitos y movimientos.
type WalletUseCase struct {
	balanceRepo repository.BalanceRepository
	txRepo      repository.TransactionRepository
	txRunner    DepositTxRunner
	verifier    paystack.Verifier
}

// NewWalletUseCase construye el caso de uso del wallet.
func NewWalletUseCase(balanceRepo repository.BalanceRepository, txRepo repository.TransactionRepository, txRunner DepositTxRunner, verifier paystack.Verifier) *WalletUseCase {
	return &WalletUseCase{balanceRepo: balanceRepo, txRepo: txRepo, txRunner: txRunner, verifier: verifier}
}

// GetBalance devuelve el saldo actual (cero si el usuario nunca depositó).
func (uc *WalletUseCase) GetBalance(ctx context.Context, userID string) (*dto.BalanceResponse, error) {
	bal, err := uc.balanceRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		UserID:    userID,
		Amount:    bal.Amount,
		Currency:  bal.Currency,
		UpdatedAt: bal.UpdatedAt,
	}, nil
}

// VerifyDeposit confirma una referencia contra la pasarela y acredita el wallet.
//
// Idempotente por referencia: si ya existe un movimiento con esa referencia se
// retorna el saldo actual sin acreditar de nuevo (el constraint único de la
// tabla cubre la carrera entre dos verificaciones simultáneas). Si el cliente
// envía un monto esperado y no coincide con lo que reporta la pasarela, la
// verificación se rechaza.
func (uc *WalletUseCase) VerifyDeposit(ctx context.Context, userID string, in dto.VerifyDepositRequest) (*dto.DepositResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	reference := strings.TrimSpace(in.Reference)

	existing, err := uc.txRepo.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// La referencia ya fue acreditada. Solo el dueño del movimiento recibe
		// la respuesta idempotente: una referencia ajena no revela monto ni éxito.
		if existing.UserID != userID {
			return nil, domain.ErrVerificationFailed
		}
		bal, err := uc.balanceRepo.Get(userID)
		if err != nil {
			return nil, err
		}
		return &dto.DepositResponse{
			Success:   true,
			Message:   "La referencia ya fue acreditada; no se acredita dos veces",
			Reference: reference,
			Amount:    existing.Amount,
			Balance:   bal.Amount,
		}, nil
	}

	result, err := uc.verifier.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, domain.ErrVerificationFailed
	}
	if !in.Amount.IsZero() && !in.Amount.Equal(result.Amount) {
		return nil, domain.ErrVerificationFailed
	}
	if !result.Amount.IsPositive() {
		return nil, domain.ErrVerificationFailed
	}

	now := time.Now()
	var newBalance decimal.Decimal
	err = uc.txRunner.RunDeposit(ctx, func(
		balanceRepo repository.BalanceRepository,
		txRepo repository.TransactionRepository,
	) error {
		// El movimiento va primero: si otra verificación concurrente ya insertó
		// la referencia, el constraint único corta aquí sin tocar el saldo.
		if err := txRepo.Create(&entity.Transaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Amount:     result.Amount,
			Reference:  reference,
			Status:     entity.TransactionStatusSuccess,
			Type:       entity.TransactionTypeDeposit,
			Gateway:    entity.GatewayPaystack,
			Currency:   "GHS",
			CreatedAt:  now,
			VerifiedAt: now,
		}); err != nil {
			return err
		}
		bal, err := balanceRepo.GetForUpdate(userID)
		if err != nil {
			return err
		}
		bal.UserID = userID
		bal.Amount = bal.Amount.Add(result.Amount)
		bal.UpdatedAt = now
		if bal.Currency == "" {
			bal.Currency = "GHS"
		}
		newBalance = bal.Amount
		return balanceRepo.Upsert(bal)
	})
	if err != nil {
		racer, lerr := uc.txRepo.GetByReference(reference)
		if lerr == nil && racer != nil {
			if racer.UserID != userID {
				return nil, domain.ErrVerificationFailed
			}
			// Perdimos la carrera contra otra verificación, pero el depósito quedó acreditado.
			bal, berr := uc.balanceRepo.Get(userID)
			if berr != nil {
				return nil, berr
			}
			return &dto.DepositResponse{
				Success:   true,
				Message:   "La referencia ya fue acreditada; no se acredita dos veces",
				Reference: reference,
				Amount:    racer.Amount,
				Balance:   bal.Amount,
			}, nil
		}
		return nil, err
	}

	return &dto.DepositResponse{
		Success:   true,
		Message:   "Depósito verificado y acreditado",
		Reference: reference,
		Amount:    result.Amount,
		Balance:   newBalance,
	}, nil
}

// ListTransactions historial de movimientos del usuario, más reciente primero.
func (uc *WalletUseCase) ListTransactions(ctx context.Context, userID string, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return ToTransactionResponses(txs), nil
}

// ToTransactionResponses mapea movimientos al DTO de listados.
func ToTransactionResponses(txs []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, dto.TransactionResponse{
			ID:         t.ID,
			Amount:     t.Amount,
			Reference:  t.Reference,
			Status:     t.Status,
			Type:       t.Type,
			Gateway:    t.Gateway,
			Currency:   t.Currency,
			VerifiedAt: t.VerifiedAt,
		})
	}
	return out
}
