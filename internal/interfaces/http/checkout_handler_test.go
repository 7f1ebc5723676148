package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recargas-api/internal/application/checker"
	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
	apphttp "github.com/jhoicas/Recargas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar los handlers sobre los casos de uso reales
// ──────────────────────────────────────────────────────────────────────────────

type stubBalanceRepo struct {
	amount decimal.Decimal
}

func (r *stubBalanceRepo) Get(userID string) (*entity.Balance, error) {
	return &entity.Balance{UserID: userID, Amount: r.amount, Currency: "GHS"}, nil
}

func (r *stubBalanceRepo) GetForUpdate(userID string) (*entity.Balance, error) {
	return r.Get(userID)
}

func (r *stubBalanceRepo) Upsert(*entity.Balance) error { return nil }
func (r *stubBalanceRepo) List() ([]*entity.Balance, error) { return nil, nil }

type stubGateway struct {
	calls int
}

func (g *stubGateway) Send(context.Context, string, entity.BundleValue, string) toppily.Result {
	g.calls++
	return toppily.Result{OK: true}
}

type stubCheckoutRunner struct {
	balanceRepo *stubBalanceRepo
	runs        int
}

func (r *stubCheckoutRunner) RunCheckout(_ context.Context, fn func(
	repository.BalanceRepository,
	repository.OrderRepository,
	repository.TransactionRepository,
) error) error {
	r.runs++
	return fn(r.balanceRepo, &stubOrderRepo{}, &stubTxRepo{})
}

type stubOrderRepo struct{}

func (r *stubOrderRepo) Create(*entity.Order) error { return nil }
func (r *stubOrderRepo) GetByID(string) (*entity.Order, error) { return nil, nil }
func (r *stubOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *stubOrderRepo) List(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *stubOrderRepo) Count(string) (int, error) { return 0, nil }
func (r *stubOrderRepo) SumCharged() (decimal.Decimal, error) { return decimal.Zero, nil }
func (r *stubOrderRepo) UpdateStatus(string, string) error { return nil }

type stubTxRepo struct{}

func (r *stubTxRepo) Create(*entity.Transaction) error { return nil }
func (r *stubTxRepo) GetByReference(string) (*entity.Transaction, error) { return nil, nil }
func (r *stubTxRepo) ListByUser(string, int, int) ([]*entity.Transaction, error) { return nil, nil }
func (r *stubTxRepo) List(int, int) ([]*entity.Transaction, error) { return nil, nil }

type stubCheckerRepo struct {
	checker *entity.Checker
}

func (r *stubCheckerRepo) Create(*entity.Checker) error { return nil }
func (r *stubCheckerRepo) GetByID(string) (*entity.Checker, error) { return r.checker, nil }
func (r *stubCheckerRepo) GetForUpdate(string) (*entity.Checker, error) { return r.checker, nil }
func (r *stubCheckerRepo) ListUnsold(string) ([]*entity.Checker, error) { return nil, nil }
func (r *stubCheckerRepo) List(string, string) ([]*entity.Checker, error) { return nil, nil }
func (r *stubCheckerRepo) MarkSold(string, string) error { return nil }
func (r *stubCheckerRepo) Update(*entity.Checker) error { return nil }
func (r *stubCheckerRepo) Delete(string) error { return nil }
func (r *stubCheckerRepo) DeleteSold() (int64, error) { return 0, nil }

type stubPurchaseRepo struct{}

func (r *stubPurchaseRepo) Create(*entity.Purchase) error { return nil }
func (r *stubPurchaseRepo) ListByUser(string) ([]*entity.Purchase, error) { return nil, nil }
func (r *stubPurchaseRepo) List(int, int) ([]*entity.Purchase, error) { return nil, nil }

type stubPurchaseRunner struct {
	balanceRepo *stubBalanceRepo
	checkerRepo *stubCheckerRepo
}

func (r *stubPurchaseRunner) RunPurchase(_ context.Context, fn func(
	repository.BalanceRepository,
	repository.CheckerRepository,
	repository.PurchaseRepository,
	repository.TransactionRepository,
) error) error {
	return fn(r.balanceRepo, r.checkerRepo, &stubPurchaseRepo{}, &stubTxRepo{})
}

// buildCheckoutApp monta POST /api/checkout con el mismo middleware que producción.
func buildCheckoutApp(balance decimal.Decimal) (*fiber.App, *stubGateway, *stubCheckoutRunner) {
	balRepo := &stubBalanceRepo{amount: balance}
	gateway := &stubGateway{}
	runner := &stubCheckoutRunner{balanceRepo: balRepo}
	uc := checkout.NewCreateOrderUseCase(runner, balRepo, gateway)
	h := apphttp.NewCheckoutHandler(uc)

	app := fiber.New()
	app.Post("/api/checkout",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleCustomer),
		h.Create,
	)
	return app, gateway, runner
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleCustomer))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del mapeo de errores del checkout
// ──────────────────────────────────────────────────────────────────────────────

// Saldo insuficiente es un rechazo del carrito: HTTP 400, sin tocar al vendor
// y sin abrir la transacción de liquidación.
func TestCheckoutHandler_SaldoInsuficiente_Retorna400(t *testing.T) {
	app, gateway, runner := buildCheckoutApp(decimal.NewFromInt(5))

	resp := postJSON(t, app, "/api/checkout",
		`{"cart":[{"phone":"0241234567","amount":"10","value_obj":{"id":1,"volume":1000}}],"method":"wallet"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"saldo insuficiente debe responder 400, no 402")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_BALANCE", body["code"])
	assert.Equal(t, 0, gateway.calls, "no debe haber entregas al vendor")
	assert.Equal(t, 0, runner.runs, "no debe abrirse la transacción de liquidación")
}

func TestCheckoutHandler_CarritoVacio_Retorna400(t *testing.T) {
	app, _, _ := buildCheckoutApp(decimal.NewFromInt(100))

	resp := postJSON(t, app, "/api/checkout", `{"cart":[],"method":"wallet"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMPTY_CART", body["code"])
}

// La compra de checkers usa el mismo contrato: fondos insuficientes → 400.
func TestCheckerHandler_SaldoInsuficiente_Retorna400(t *testing.T) {
	chk := &entity.Checker{
		ID:        "chk-1",
		Type:      entity.CheckerTypeWassce,
		Message:   "Serial: 111 PIN: 222",
		Amount:    decimal.NewFromInt(20),
		Status:    entity.CheckerStatusNotSold,
		CreatedAt: time.Now(),
	}
	checkerRepo := &stubCheckerRepo{checker: chk}
	runner := &stubPurchaseRunner{
		balanceRepo: &stubBalanceRepo{amount: decimal.NewFromInt(5)},
		checkerRepo: checkerRepo,
	}
	uc := checker.NewCheckerUseCase(checkerRepo, &stubPurchaseRepo{}, runner)
	h := apphttp.NewCheckerHandler(uc)

	app := fiber.New()
	app.Post("/api/checkers/purchase",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleCustomer),
		h.Purchase,
	)

	resp := postJSON(t, app, "/api/checkers/purchase", `{"checker_id":"chk-1"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"saldo insuficiente debe responder 400, no 402")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_BALANCE", body["code"])
}
