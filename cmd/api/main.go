package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Recargas-api/internal/application/auth"
	"github.com/jhoicas/Recargas-api/internal/application/catalog"
	"github.com/jhoicas/Recargas-api/internal/application/checker"
	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/usecase"
	"github.com/jhoicas/Recargas-api/internal/application/wallet"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/paystack"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
	httpRouter "github.com/jhoicas/Recargas-api/internal/interfaces/http"
	"github.com/jhoicas/Recargas-api/pkg/config"
	"github.com/jhoicas/Recargas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	checkerRepo := postgres.NewCheckerRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	complaintRepo := postgres.NewComplaintRepository(pool)
	referralRepo := postgres.NewReferralRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	vendorLog := log.Component("toppily")
	vendorClient := toppily.NewClient(cfg.Toppily, &vendorLog)
	paystackLog := log.Component("paystack")
	paystackClient := paystack.NewClient(cfg.Paystack, &paystackLog)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	checkoutUC := checkout.NewCreateOrderUseCase(txRunner, balanceRepo, vendorClient)
	walletUC := wallet.NewWalletUseCase(balanceRepo, txRepo, txRunner, paystackClient)
	catalogUC := catalog.NewCatalogUseCase(serviceRepo)
	checkerUC := checker.NewCheckerUseCase(checkerRepo, purchaseRepo, txRunner)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	complaintUC := usecase.NewComplaintUseCase(complaintRepo, orderRepo)
	referralUC := usecase.NewReferralUseCase(referralRepo, cfg.App.InviteBaseURL)
	adminUC := usecase.NewAdminUseCase(userRepo, balanceRepo, orderRepo, txRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recargas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CheckoutUC:  checkoutUC,
		WalletUC:    walletUC,
		CatalogUC:   catalogUC,
		CheckerUC:   checkerUC,
		OrderUC:     orderUC,
		ComplaintUC: complaintUC,
		ReferralUC:  referralUC,
		AdminUC:     adminUC,
		Vendor:      vendorClient,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
