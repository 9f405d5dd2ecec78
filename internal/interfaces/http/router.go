package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/application/auth"
	"github.com/oseikofi/procure-track/internal/application/borrow"
	"github.com/oseikofi/procure-track/internal/application/requisition"
	"github.com/oseikofi/procure-track/internal/application/stock"
	"github.com/oseikofi/procure-track/internal/application/usecase"
	"github.com/oseikofi/procure-track/internal/domain/entity"
)

// RouterDeps wires the use cases into the router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CatalogUC     *usecase.CatalogUseCase
	StockUC       *stock.UseCase
	BorrowUC      *borrow.UseCase
	RequisitionUC *requisition.UseCase
	VendorUC      *usecase.VendorUseCase
	ProcurementUC *usecase.ProcurementUseCase
	DashboardUC   *usecase.DashboardUseCase
	AuditSvc      *audit.Service
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	approvers := RequireRole(entity.RoleHOD, entity.RoleProcurementManager, entity.RoleFinanceOfficer)
	procurementOnly := RequireRole(entity.RoleProcurementManager)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	departments := protected.Group("/departments")
	departments.Post("/", catalogHandler.CreateDepartment)
	departments.Get("/", catalogHandler.ListDepartments)
	departments.Get("/:id", catalogHandler.GetDepartment)

	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)

	items := protected.Group("/items")
	items.Post("/", catalogHandler.CreateItem)
	items.Get("/", catalogHandler.ListItems)
	items.Get("/:id", catalogHandler.GetItem)
	items.Put("/:id", catalogHandler.UpdateItem)

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	stocks := protected.Group("/stocks")
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	protected.Get("/stock-movements", stockHandler.Movements)

	// Borrow requests. Decisions are HOD territory; creation is open to any
	// authenticated user.
	borrowHandler := NewBorrowHandler(deps.BorrowUC)
	borrows := protected.Group("/borrow-requests")
	borrows.Post("/", borrowHandler.Create)
	borrows.Get("/", borrowHandler.List)
	borrows.Get("/:id", borrowHandler.GetByID)
	borrows.Patch("/:id/approve", RequireRole(entity.RoleHOD), borrowHandler.Approve)
	borrows.Patch("/:id/reject", RequireRole(entity.RoleHOD), borrowHandler.Reject)

	// Purchase requisitions. Each gate belongs to a role; the usecase checks
	// the gate, the route checks the caller can decide at all.
	requisitionHandler := NewRequisitionHandler(deps.RequisitionUC)
	requisitions := protected.Group("/purchase-requisitions")
	requisitions.Post("/", requisitionHandler.Create)
	requisitions.Get("/", requisitionHandler.List)
	requisitions.Get("/:id", requisitionHandler.GetByID)
	requisitions.Patch("/:id/approve", approvers, requisitionHandler.Approve)
	requisitions.Patch("/:id/reject", approvers, requisitionHandler.Reject)

	// Vendors. Writes restricted to procurement.
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors := protected.Group("/vendors")
	vendors.Post("/", procurementOnly, vendorHandler.Create)
	vendors.Patch("/:id", procurementOnly, vendorHandler.Update)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)

	// Quotations and purchase orders (procurement only).
	procurementHandler := NewProcurementHandler(deps.ProcurementUC)
	quotations := protected.Group("/quotations", procurementOnly)
	quotations.Post("/", procurementHandler.CreateQuotation)
	quotations.Get("/", procurementHandler.ListQuotations)

	orders := protected.Group("/purchase-orders", procurementOnly)
	orders.Post("/", procurementHandler.CreateOrder)
	orders.Get("/", procurementHandler.ListOrders)
	orders.Get("/:id", procurementHandler.GetOrder)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/activities", dashboardHandler.RecentActivities)

	// Audit trail (approver roles only)
	auditHandler := NewAuditHandler(deps.AuditSvc)
	protected.Get("/audit-logs", approvers, auditHandler.List)
}
