// seed populates a development database with departments, users, catalog
// items, stock and vendors so the API is usable right after startup.
//
// Usage: go run ./cmd/seed
// All accounts get the password "password123".
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/infrastructure/postgres"
	"github.com/oseikofi/procure-track/pkg/config"
	"github.com/oseikofi/procure-track/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	deptRepo := postgres.NewDepartmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)

	now := time.Now()

	log.Info().Msg("seeding departments")
	deptIDs := map[string]string{}
	for _, name := range []string{
		"Information Technology", "Human Resources", "Finance", "Procurement", "Marketing",
	} {
		id := uuid.New().String()
		deptIDs[name] = id
		must(log, deptRepo.Create(&entity.Department{
			ID: id, Name: name, CreatedAt: now, UpdatedAt: now,
		}), "department "+name)
	}

	log.Info().Msg("seeding users")
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	seedUsers := []struct {
		username, email, fullName, role, dept string
	}{
		{"admin", "admin@procure.com", "System Administrator", entity.RoleProcurementManager, "Procurement"},
		{"it_hod", "it.hod@procure.com", "IT Department Head", entity.RoleHOD, "Information Technology"},
		{"hr_hod", "hr.hod@procure.com", "HR Department Head", entity.RoleHOD, "Human Resources"},
		{"finance_hod", "finance.hod@procure.com", "Finance Department Head", entity.RoleFinanceOfficer, "Finance"},
		{"proc_hod", "proc.hod@procure.com", "Procurement Department Head", entity.RoleProcurementManager, "Procurement"},
		{"marketing_hod", "marketing.hod@procure.com", "Marketing Department Head", entity.RoleHOD, "Marketing"},
		{"staff1", "staff1@procure.com", "General Staff 1", entity.RoleGeneralUser, "Information Technology"},
		{"staff2", "staff2@procure.com", "General Staff 2", entity.RoleGeneralUser, "Human Resources"},
	}
	for _, u := range seedUsers {
		must(log, userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			PasswordHash: string(hash),
			Email:        u.email,
			FullName:     u.fullName,
			Role:         u.role,
			DepartmentID: deptIDs[u.dept],
			CreatedAt:    now,
			UpdatedAt:    now,
		}), "user "+u.username)
	}

	log.Info().Msg("seeding categories")
	officeCatID := uuid.New().String()
	itCatID := uuid.New().String()
	must(log, categoryRepo.Create(&entity.Category{
		ID: officeCatID, Name: "Office Supplies",
		Description: "General office supplies and stationery", CreatedAt: now,
	}), "category Office Supplies")
	must(log, categoryRepo.Create(&entity.Category{
		ID: itCatID, Name: "IT Equipment",
		Description: "Computers, peripherals, and networking equipment", CreatedAt: now,
	}), "category IT Equipment")

	log.Info().Msg("seeding items")
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	laptopID := uuid.New().String()
	printerID := uuid.New().String()
	deskID := uuid.New().String()
	seedItems := []*entity.Item{
		{
			ID: laptopID, Code: "IT-001", Name: "Laptop Computer",
			Description: "Standard office laptop - i7, 16GB RAM, 512GB SSD",
			CategoryID:  itCatID, Unit: "piece", MinReorderLevel: 5,
			UnitPrice: price("1200.00"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: printerID, Code: "IT-002", Name: "LaserJet Printer",
			Description: "Network printer - Color LaserJet Pro",
			CategoryID:  itCatID, Unit: "piece", MinReorderLevel: 2,
			UnitPrice: price("400.00"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: deskID, Code: "OF-001", Name: "Office Desk",
			Description: "Standard office desk - 120x60cm",
			CategoryID:  officeCatID, Unit: "piece", MinReorderLevel: 3,
			UnitPrice: price("300.00"), CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, it := range seedItems {
		must(log, itemRepo.Create(it), "item "+it.Code)
	}

	log.Info().Msg("seeding stock")
	seedStock := []*entity.Stock{
		{ID: uuid.New().String(), ItemID: laptopID, DepartmentID: deptIDs["Information Technology"], QuantityAvailable: 10, LastUpdated: now},
		{ID: uuid.New().String(), ItemID: printerID, DepartmentID: deptIDs["Information Technology"], QuantityAvailable: 5, LastUpdated: now},
		{ID: uuid.New().String(), ItemID: deskID, DepartmentID: deptIDs["Human Resources"], QuantityAvailable: 8, LastUpdated: now},
	}
	for _, s := range seedStock {
		must(log, stockRepo.Create(s), "stock "+s.ItemID)
	}

	log.Info().Msg("seeding vendors")
	seedVendors := []*entity.Vendor{
		{
			ID: uuid.New().String(), Name: "TechCorp Solutions", RegistrationNumber: "TCS001",
			Email: "sales@techcorp.com", Phone: "+1234567890", Address: "123 Tech Street",
			ContactPerson: "John Tech", Status: entity.VendorStatusActive,
			Categories: []string{"IT Equipment", "Software"},
			Rating:     decimal.RequireFromString("4.5"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Office Supplies Plus", RegistrationNumber: "OSP002",
			Email: "sales@osplus.com", Phone: "+1234567891", Address: "456 Supply Road",
			ContactPerson: "Jane Supply", Status: entity.VendorStatusActive,
			Categories: []string{"Office Supplies"},
			Rating:     decimal.RequireFromString("4.0"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Furniture World", RegistrationNumber: "FW003",
			Email: "sales@fworld.com", Phone: "+1234567892", Address: "789 Furniture Ave",
			ContactPerson: "Bob Furnish", Status: entity.VendorStatusActive,
			Categories: []string{"Furniture"},
			Rating:     decimal.RequireFromString("4.2"), CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, v := range seedVendors {
		must(log, vendorRepo.Create(v), "vendor "+v.Name)
	}

	log.Info().Msg("seed complete")
}

func must(log *logger.Logger, err error, what string) {
	if err != nil {
		log.Fatal().Err(err).Str("entity", what).Msg("seed failed")
	}
}
