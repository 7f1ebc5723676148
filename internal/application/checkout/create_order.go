package checkout

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
	"github.com/jhoicas/Recargas-api/internal/domain/wallet"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
)

const (
	methodWallet = "wallet"
	currencyGHS  = "GHS"
)

// CreateOrderUseCase orquesta el checkout completo: valida el carrito, verifica
// fondos, entrega cada línea al vendor en secuencia y liquida en una sola
// transacción lo que el vendor confirmó.
type CreateOrderUseCase struct {
	txRunner    CheckoutTxRunner
	balanceRepo repository.BalanceRepository
	gateway     toppily.Gateway
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner CheckoutTxRunner, balanceRepo repository.BalanceRepository, gateway toppily.Gateway) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:    txRunner,
		balanceRepo: balanceRepo,
		gateway:     gateway,
	}
}

// CreateOrder ejecuta el flujo de checkout para un cliente autenticado.
//
// Fases: validación → verificación de fondos (lectura, sin bloquear) →
// entregas al vendor una por una → liquidación atómica (débito condicional +
// orden + movimiento). Las entregas quedan fuera de la transacción a propósito:
// una llamada HTTP de hasta 25s por línea dentro de una tx mantendría la fila
// del wallet bloqueada durante todo el carrito.
//
// Cuando ninguna línea fue confirmada, la orden se guarda igual (status failed,
// cobro cero) y se retorna junto con domain.ErrAllItemsFailed para que el
// handler responda 502.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.Method != "" && in.Method != methodWallet {
		return nil, domain.ErrInvalidInput
	}
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.OrderItem, 0, len(in.Cart))
	for _, line := range in.Cart {
		if !line.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{
			Phone:       strings.TrimSpace(line.Phone),
			Amount:      line.Amount,
			Value:       line.Value,
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
		})
	}
	total := wallet.TotalRequested(items)

	// Verificación de fondos antes de tocar al vendor: si el saldo no cubre el
	// total pedido, el carrito entero se rechaza sin hacer ninguna entrega.
	bal, err := uc.balanceRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if bal.Amount.LessThan(total) {
		return nil, domain.ErrInsufficientBalance
	}

	orderNumber := newOrderNumber()

	// Entregas al vendor, en secuencia y en el orden del carrito. Una línea sin
	// teléfono o sin selector se marca skipped sin llamar al vendor; el resto
	// se intenta siempre, aunque las anteriores hayan fallado.
	for i := range items {
		item := &items[i]
		if item.Phone == "" || !item.Value.IsSelectable() {
			item.APIStatus = entity.ItemStatusSkipped
			continue
		}
		item.TrxRef = newTrxRef(orderNumber, i)
		res := uc.gateway.Send(ctx, item.Phone, item.Value, item.TrxRef)
		switch {
		case res.Skipped:
			// El gateway también sabe rechazar líneas no entregables; misma
			// clase que el pre-filtro de arriba, no un fallo del vendor.
			item.APIStatus = entity.ItemStatusSkipped
		case res.OK:
			item.APIStatus = entity.ItemStatusSuccess
		default:
			item.APIStatus = entity.ItemStatusFailed
		}
		item.APIResponse = res.Payload
	}

	charged, status := wallet.Summarize(items, total)
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		OrderID:       orderNumber,
		Items:         items,
		TotalAmount:   total,
		ChargedAmount: charged,
		Status:        status,
		PaidFrom:      methodWallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Liquidación atómica: débito condicional + orden + movimiento en una sola
	// transacción. El saldo se relee con FOR UPDATE y se vuelve a verificar:
	// otro checkout concurrente pudo haberlo gastado durante las entregas.
	err = uc.txRunner.RunCheckout(ctx, func(
		balanceRepo repository.BalanceRepository,
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error {
		if charged.IsPositive() {
			locked, err := balanceRepo.GetForUpdate(userID)
			if err != nil {
				return err
			}
			if locked.Amount.LessThan(charged) {
				return domain.ErrInsufficientBalance
			}
			locked.Amount = locked.Amount.Sub(charged)
			locked.UpdatedAt = now
			if err := balanceRepo.Upsert(locked); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if charged.IsPositive() {
			// Referencia = id de la orden: el número legible NAN puede repetirse
			// y la referencia del movimiento tiene constraint único.
			return txRepo.Create(&entity.Transaction{
				ID:         uuid.New().String(),
				UserID:     userID,
				Amount:     charged,
				Reference:  order.ID,
				Status:     entity.TransactionStatusSuccess,
				Type:       entity.TransactionTypePurchase,
				Gateway:    entity.GatewayWallet,
				Currency:   currencyGHS,
				CreatedAt:  now,
				VerifiedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toCheckoutResponse(order)
	if status == entity.OrderStatusFailed {
		return resp, domain.ErrAllItemsFailed
	}
	return resp, nil
}

func toCheckoutResponse(order *entity.Order) *dto.CheckoutResponse {
	resp := &dto.CheckoutResponse{
		Success:       order.Status != entity.OrderStatusFailed,
		OrderID:       order.OrderID,
		Status:        order.Status,
		ChargedAmount: order.ChargedAmount,
		Items:         ToOrderItemOutcomes(order.Items),
	}
	switch order.Status {
	case entity.OrderStatusCompleted:
		resp.Message = "Orden procesada con éxito"
	case entity.OrderStatusPartial:
		resp.Message = "Orden procesada parcialmente; solo se cobraron los ítems entregados"
	default:
		resp.Message = "Ningún ítem pudo ser procesado; no se cobró nada"
	}
	return resp
}

// ToOrderItemOutcomes convierte los ítems de una orden al espejo de la API.
// Compartido con el historial de órdenes.
func ToOrderItemOutcomes(items []entity.OrderItem) []dto.OrderItemOutcome {
	out := make([]dto.OrderItemOutcome, 0, len(items))
	for _, it := range items {
		var payload any
		if len(it.APIResponse) > 0 {
			payload = it.APIResponse
		}
		out = append(out, dto.OrderItemOutcome{
			Phone:       it.Phone,
			Amount:      it.Amount,
			Value:       it.Value,
			ValueText:   it.Value.DisplayText(),
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			TrxRef:      it.TrxRef,
			APIStatus:   it.APIStatus,
			APIResponse: payload,
		})
	}
	return out
}

// newOrderNumber genera el identificador legible de la orden: "NAN" + 5 dígitos.
func newOrderNumber() string {
	return fmt.Sprintf("NAN%05d", rand.Intn(90000)+10000)
}

// newTrxRef genera la referencia única por intento de entrega:
// {order_id}_{índice}_{6 hex aleatorios}. Única aunque se reintente el mismo carrito.
func newTrxRef(orderNumber string, idx int) string {
	buf := make([]byte, 3)
	_, _ = crand.Read(buf)
	return fmt.Sprintf("%s_%d_%s", orderNumber, idx, hex.EncodeToString(buf))
}
