package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/auth"
	"github.com/jhoicas/Recargas-api/internal/application/catalog"
	"github.com/jhoicas/Recargas-api/internal/application/checker"
	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/usecase"
	"github.com/jhoicas/Recargas-api/internal/application/wallet"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CheckoutUC  *checkout.CreateOrderUseCase
	WalletUC    *wallet.WalletUseCase
	CatalogUC   *catalog.CatalogUseCase
	CheckerUC   *checker.CheckerUseCase
	OrderUC     *usecase.OrderUseCase
	ComplaintUC *usecase.ComplaintUseCase
	ReferralUC  *usecase.ReferralUseCase
	AdminUC     *usecase.AdminUseCase
	Vendor      *toppily.Client
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Validación pública del código de invitación (la pantalla de registro la
	// consulta antes de que exista sesión).
	referralHandler := NewReferralHandler(deps.ReferralUC)
	authGroup.Get("/referral/:code", referralHandler.Validate)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del usuario autenticado
	protected.Put("/profile/password", authHandler.ChangePassword)

	// Catálogo (cualquier usuario autenticado)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/services", catalogHandler.List)
	protected.Get("/services/:id", catalogHandler.GetByID)

	// Checkout (solo clientes; los admins no compran)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Post("/checkout", RequireRole(entity.RoleCustomer), checkoutHandler.Create)

	// Wallet
	walletHandler := NewWalletHandler(deps.WalletUC)
	walletGroup := protected.Group("/wallet")
	walletGroup.Get("/balance", walletHandler.Balance)
	walletGroup.Get("/verify", walletHandler.VerifyDeposit)
	protected.Get("/transactions", walletHandler.Transactions)

	// Historial de órdenes
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Get("/orders", orderHandler.List)
	protected.Get("/orders/:id", orderHandler.GetByID)

	// Checkers
	checkerHandler := NewCheckerHandler(deps.CheckerUC)
	protected.Get("/checkers", checkerHandler.ListAvailable)
	protected.Post("/checkers/purchase", RequireRole(entity.RoleCustomer), checkerHandler.Purchase)
	protected.Get("/purchases", checkerHandler.Purchases)

	// Reclamos
	complaintHandler := NewComplaintHandler(deps.ComplaintUC)
	protected.Post("/complaints", complaintHandler.Create)
	protected.Get("/complaints", complaintHandler.List)

	// Referidos
	protected.Get("/referral", referralHandler.Get)

	// Admin (requiere rol admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/customers", adminHandler.Customers)
	admin.Put("/customers/:id/status", adminHandler.UpdateCustomerStatus)
	admin.Get("/balances", adminHandler.Balances)
	admin.Put("/balances/:id", adminHandler.SetBalance)
	admin.Get("/transactions", adminHandler.Transactions)

	admin.Get("/services", catalogHandler.List)
	admin.Post("/services", catalogHandler.Create)
	admin.Put("/services/:id", catalogHandler.Update)
	admin.Delete("/services/:id", catalogHandler.Delete)

	admin.Get("/orders", orderHandler.AdminList)
	admin.Put("/orders/:id/status", orderHandler.AdminUpdateStatus)

	admin.Get("/checkers", checkerHandler.AdminList)
	admin.Post("/checkers", checkerHandler.AdminCreate)
	admin.Delete("/checkers/sold", checkerHandler.AdminPurgeSold)
	admin.Put("/checkers/:id", checkerHandler.AdminUpdate)
	admin.Delete("/checkers/:id", checkerHandler.AdminDelete)
	admin.Get("/purchases", checkerHandler.AdminPurchases)

	admin.Get("/complaints", complaintHandler.AdminList)
	admin.Put("/complaints/:id/resolve", complaintHandler.AdminResolve)

	admin.Get("/referrals", referralHandler.AdminList)

	vendorHandler := NewVendorHandler(deps.Vendor)
	admin.Get("/vendor/packages", vendorHandler.Packages)
}
