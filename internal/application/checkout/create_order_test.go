package checkout_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del flujo de checkout con fakes en memoria: vendor programable,
// wallet y repos de órdenes/movimientos capturados para inspección.
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "user-1"

// fakeGateway responde según el plan: un bool por llamada, en orden.
type fakeGateway struct {
	plan  []bool
	calls int
}

func (g *fakeGateway) Send(_ context.Context, phone string, _ entity.BundleValue, trxRef string) toppily.Result {
	idx := g.calls
	g.calls++
	ok := idx < len(g.plan) && g.plan[idx]
	payload, _ := json.Marshal(map[string]any{"success": ok, "trx_ref": trxRef, "phone": phone})
	return toppily.Result{OK: ok, Payload: payload}
}

// fakeBalanceRepo wallet en memoria de un solo usuario.
type fakeBalanceRepo struct {
	amount decimal.Decimal
	// saldo que devuelve GetForUpdate si difiere del actual (simula un checkout
	// concurrente que gastó entre la verificación y la liquidación).
	lockedAmount *decimal.Decimal
}

func (r *fakeBalanceRepo) Get(userID string) (*entity.Balance, error) {
	return &entity.Balance{UserID: userID, Amount: r.amount, Currency: "GHS"}, nil
}

func (r *fakeBalanceRepo) GetForUpdate(userID string) (*entity.Balance, error) {
	amt := r.amount
	if r.lockedAmount != nil {
		amt = *r.lockedAmount
	}
	return &entity.Balance{UserID: userID, Amount: amt, Currency: "GHS"}, nil
}

func (r *fakeBalanceRepo) Upsert(b *entity.Balance) error {
	r.amount = b.Amount
	return nil
}

func (r *fakeBalanceRepo) List() ([]*entity.Balance, error) { return nil, nil }

type fakeOrderRepo struct {
	created []*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.created = append(r.created, o)
	return nil
}
func (r *fakeOrderRepo) GetByID(string) (*entity.Order, error) { return nil, domain.ErrNotFound }
func (r *fakeOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) List(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) Count(string) (int, error)                      { return 0, nil }
func (r *fakeOrderRepo) SumCharged() (decimal.Decimal, error)           { return decimal.Zero, nil }
func (r *fakeOrderRepo) UpdateStatus(string, string) error              { return nil }

type fakeTxRepo struct {
	created []*entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.created = append(r.created, tx)
	return nil
}
func (r *fakeTxRepo) GetByReference(string) (*entity.Transaction, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeTxRepo) ListByUser(string, int, int) ([]*entity.Transaction, error) { return nil, nil }
func (r *fakeTxRepo) List(int, int) ([]*entity.Transaction, error)               { return nil, nil }

// fakeRunner ejecuta la función con los mismos fakes, sin transacción real.
type fakeRunner struct {
	balances *fakeBalanceRepo
	orders   *fakeOrderRepo
	txs      *fakeTxRepo
}

func (r *fakeRunner) RunCheckout(_ context.Context, fn func(
	repository.BalanceRepository,
	repository.OrderRepository,
	repository.TransactionRepository,
) error) error {
	return fn(r.balances, r.orders, r.txs)
}

func buildCheckout(saldo string, plan ...bool) (*checkout.CreateOrderUseCase, *fakeBalanceRepo, *fakeOrderRepo, *fakeTxRepo, *fakeGateway) {
	balances := &fakeBalanceRepo{amount: decimal.RequireFromString(saldo)}
	orders := &fakeOrderRepo{}
	txs := &fakeTxRepo{}
	gw := &fakeGateway{plan: plan}
	runner := &fakeRunner{balances: balances, orders: orders, txs: txs}
	return checkout.NewCreateOrderUseCase(runner, balances, gw), balances, orders, txs, gw
}

func cartLine(phone, amount string, packageID int64) dto.CartItemRequest {
	return dto.CartItemRequest{
		Phone:       phone,
		Amount:      decimal.RequireFromString(amount),
		Value:       entity.BundleValue{PackageID: packageID, VolumeMB: 1000},
		ServiceName: "MTN Data",
	}
}

func TestCreateOrder_TodoExitoso(t *testing.T) {
	uc, balances, orders, txs, _ := buildCheckout("50.00", true, true)

	resp, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			cartLine("0241111111", "10.00", 1),
			cartLine("0242222222", "5.00", 2),
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, entity.OrderStatusCompleted, resp.Status)
	assert.True(t, resp.ChargedAmount.Equal(decimal.RequireFromString("15.00")))

	// Débito aplicado y persistencia completa.
	assert.True(t, balances.amount.Equal(decimal.RequireFromString("35.00")),
		"El wallet debe quedar con saldo - cobrado, got %s", balances.amount)
	require.Len(t, orders.created, 1)
	require.Len(t, txs.created, 1)
	assert.Equal(t, entity.TransactionTypePurchase, txs.created[0].Type)
	assert.Equal(t, orders.created[0].ID, txs.created[0].Reference,
		"El movimiento de compra referencia la orden por su id único")
}

func TestCreateOrder_ParcialCobraSoloEntregado(t *testing.T) {
	uc, balances, orders, _, _ := buildCheckout("50.00", true, false)

	resp, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			cartLine("0241111111", "10.00", 1),
			cartLine("0242222222", "5.00", 2),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPartial, resp.Status)
	assert.True(t, resp.ChargedAmount.Equal(decimal.RequireFromString("10.00")),
		"Solo se cobra la línea confirmada, got %s", resp.ChargedAmount)
	assert.True(t, balances.amount.Equal(decimal.RequireFromString("40.00")))

	require.Len(t, orders.created, 1)
	require.Len(t, orders.created[0].Items, 2)
	assert.Equal(t, entity.ItemStatusSuccess, orders.created[0].Items[0].APIStatus)
	assert.Equal(t, entity.ItemStatusFailed, orders.created[0].Items[1].APIStatus)
}

func TestCreateOrder_TodoFallidoGuardaOrdenSinCobrar(t *testing.T) {
	uc, balances, orders, txs, _ := buildCheckout("50.00", false, false)

	resp, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			cartLine("0241111111", "10.00", 1),
			cartLine("0242222222", "5.00", 2),
		},
	})

	// La orden fallida se retorna junto con el error para que el handler
	// responda 502 con el detalle.
	require.ErrorIs(t, err, domain.ErrAllItemsFailed)
	require.NotNil(t, resp)
	assert.Equal(t, entity.OrderStatusFailed, resp.Status)
	assert.True(t, resp.ChargedAmount.IsZero())

	assert.True(t, balances.amount.Equal(decimal.RequireFromString("50.00")),
		"Una orden fallida no debita nada")
	require.Len(t, orders.created, 1, "La orden fallida se persiste igual para auditoría")
	assert.Empty(t, txs.created, "Sin cobro no se registra movimiento")
}

func TestCreateOrder_SaldoInsuficienteRechazaSinLlamarVendor(t *testing.T) {
	uc, _, orders, _, gw := buildCheckout("5.00", true, true)

	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			cartLine("0241111111", "10.00", 1),
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Zero(t, gw.calls, "Sin fondos no se hace ninguna entrega")
	assert.Empty(t, orders.created)
}

func TestCreateOrder_CarritoVacio(t *testing.T) {
	uc, _, _, _, _ := buildCheckout("50.00")

	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateOrder_MetodoDesconocido(t *testing.T) {
	uc, _, _, _, _ := buildCheckout("50.00")

	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart:   []dto.CartItemRequest{cartLine("0241111111", "10.00", 1)},
		Method: "momo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_MontoNoPositivo(t *testing.T) {
	uc, _, _, _, _ := buildCheckout("50.00")

	line := cartLine("0241111111", "0", 1)
	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{line},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCreateOrder_LineaSinSelectorSeSalta verifica que una línea sin teléfono o
// sin selector queda skipped sin tocar al vendor, y las demás se procesan.
func TestCreateOrder_LineaSinSelectorSeSalta(t *testing.T) {
	uc, _, orders, _, gw := buildCheckout("50.00", true)

	sinSelector := dto.CartItemRequest{
		Phone:  "0243333333",
		Amount: decimal.RequireFromString("5.00"),
		Value:  entity.BundleValue{Label: "MTN Mashup"}, // solo label, no selector
	}
	resp, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			sinSelector,
			cartLine("0241111111", "10.00", 1),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls, "La línea skipped no genera llamada al vendor")
	assert.Equal(t, entity.OrderStatusPartial, resp.Status)

	require.Len(t, orders.created, 1)
	assert.Equal(t, entity.ItemStatusSkipped, orders.created[0].Items[0].APIStatus)
	assert.Empty(t, orders.created[0].Items[0].TrxRef, "Una línea skipped no lleva trx_ref")
	assert.Equal(t, entity.ItemStatusSuccess, orders.created[0].Items[1].APIStatus)
}

// TestCreateOrder_CarreraEnLiquidacion simula otro checkout que gastó el saldo
// entre la verificación inicial y la liquidación: el re-chequeo bajo FOR UPDATE
// debe abortar la transacción completa.
func TestCreateOrder_CarreraEnLiquidacion(t *testing.T) {
	uc, balances, orders, txs, _ := buildCheckout("50.00", true)
	gastado := decimal.RequireFromString("2.00")
	balances.lockedAmount = &gastado

	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{cartLine("0241111111", "10.00", 1)},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Empty(t, orders.created, "La transacción abortada no persiste la orden")
	assert.Empty(t, txs.created)
}

func TestCreateOrder_TrxRefUnicaPorLinea(t *testing.T) {
	uc, _, orders, _, _ := buildCheckout("50.00", true, true)

	_, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{
			cartLine("0241111111", "10.00", 1),
			cartLine("0242222222", "5.00", 2),
		},
	})

	require.NoError(t, err)
	require.Len(t, orders.created, 1)
	items := orders.created[0].Items
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].TrxRef)
	assert.NotEmpty(t, items[1].TrxRef)
	assert.NotEqual(t, items[0].TrxRef, items[1].TrxRef,
		"Cada línea lleva su propia referencia de entrega")
}

// skippingGateway clasifica toda línea como no entregable, como hace el
// cliente real cuando falta teléfono o selector.
type skippingGateway struct{ calls int }

func (g *skippingGateway) Send(_ context.Context, _ string, _ entity.BundleValue, _ string) toppily.Result {
	g.calls++
	payload, _ := json.Marshal(map[string]string{"error": "missing bundle selector"})
	return toppily.Result{Skipped: true, Payload: payload}
}

// TestCreateOrder_GatewaySkippedNoEsFallo: si el gateway devuelve una línea
// como no entregable, se clasifica skipped igual que el pre-filtro, no como
// rechazo del vendor, y no se cobra.
func TestCreateOrder_GatewaySkippedNoEsFallo(t *testing.T) {
	balances := &fakeBalanceRepo{amount: decimal.RequireFromString("50.00")}
	orders := &fakeOrderRepo{}
	txs := &fakeTxRepo{}
	gw := &skippingGateway{}
	runner := &fakeRunner{balances: balances, orders: orders, txs: txs}
	uc := checkout.NewCreateOrderUseCase(runner, balances, gw)

	resp, err := uc.CreateOrder(context.Background(), testUserID, dto.CheckoutRequest{
		Cart: []dto.CartItemRequest{cartLine("0241111111", "10.00", 1)},
	})

	assert.ErrorIs(t, err, domain.ErrAllItemsFailed)
	require.NotNil(t, resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, entity.ItemStatusSkipped, resp.Items[0].APIStatus)
	assert.Equal(t, 1, gw.calls)
	assert.True(t, balances.amount.Equal(decimal.RequireFromString("50.00")),
		"Una línea skipped no se cobra")
	require.Len(t, orders.created, 1)
	assert.True(t, orders.created[0].ChargedAmount.IsZero())
}
