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

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/application/auth"
	"github.com/oseikofi/procure-track/internal/application/borrow"
	"github.com/oseikofi/procure-track/internal/application/requisition"
	"github.com/oseikofi/procure-track/internal/application/stock"
	"github.com/oseikofi/procure-track/internal/application/usecase"
	"github.com/oseikofi/procure-track/internal/infrastructure/postgres"
	httpRouter "github.com/oseikofi/procure-track/internal/interfaces/http"
	"github.com/oseikofi/procure-track/pkg/config"
	"github.com/oseikofi/procure-track/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	deptRepo := postgres.NewDepartmentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	borrowRepo := postgres.NewBorrowRequestRepository(pool)
	requisitionRepo := postgres.NewPurchaseRequisitionRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, deptRepo, cfg.JWT)
	catalogUC := usecase.NewCatalogUseCase(txRunner, deptRepo, categoryRepo, itemRepo)
	stockUC := stock.NewUseCase(txRunner, stockRepo, movementRepo, itemRepo, deptRepo)
	borrowUC := borrow.NewUseCase(txRunner, borrowRepo, itemRepo, deptRepo)
	requisitionUC := requisition.NewUseCase(txRunner, requisitionRepo, deptRepo)
	vendorUC := usecase.NewVendorUseCase(txRunner, vendorRepo)
	procurementUC := usecase.NewProcurementUseCase(txRunner, quotationRepo, orderRepo, requisitionRepo, vendorRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	auditSvc := audit.NewService(auditRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ProcureTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		StockUC:       stockUC,
		BorrowUC:      borrowUC,
		RequisitionUC: requisitionUC,
		VendorUC:      vendorUC,
		ProcurementUC: procurementUC,
		DashboardUC:   dashboardUC,
		AuditSvc:      auditSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
