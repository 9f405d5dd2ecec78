package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// CatalogUseCase manages departments, categories and items.
type CatalogUseCase struct {
	txRunner     TxRunner
	deptRepo     repository.DepartmentRepository
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
}

// NewCatalogUseCase builds the catalog service.
func NewCatalogUseCase(
	txRunner TxRunner,
	deptRepo repository.DepartmentRepository,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		txRunner:     txRunner,
		deptRepo:     deptRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// CreateDepartment registers a department. HODID may be empty until a head
// is appointed.
func (uc *CatalogUseCase) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*entity.Department, error) {
	now := time.Now()
	dept := &entity.Department{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		HODID:     req.HODID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dept.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.deptRepo.Create(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// GetDepartment returns one department.
func (uc *CatalogUseCase) GetDepartment(ctx context.Context, id string) (*entity.Department, error) {
	dept, err := uc.deptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}
	return dept, nil
}

// ListDepartments returns all departments.
func (uc *CatalogUseCase) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	return uc.deptRepo.List()
}

// CreateCategory registers an item category.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*entity.Category, error) {
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if cat.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ListCategories returns all categories.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// CreateItemInput carries the catalog fields plus the acting user for the
// audit trail.
type CreateItemInput struct {
	dto.CreateItemRequest
	ActorID   string
	IPAddress string
	UserAgent string
}

// CreateItem registers a catalog item. Code is unique across the catalog.
func (uc *CatalogUseCase) CreateItem(ctx context.Context, in CreateItemInput) (*entity.Item, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" || strings.TrimSpace(in.Name) == "" || in.MinReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("item code %s: %w", code, domain.ErrDuplicate)
	}

	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Code:            code,
		Name:            in.Name,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		Unit:            in.Unit,
		MinReorderLevel: in.MinReorderLevel,
		UnitPrice:       in.UnitPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		itemRepo repository.ItemRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionCreateItem,
			EntityType: "Item",
			EntityID:   item.ID,
			After:      item,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial update. Code is immutable.
func (uc *CatalogUseCase) UpdateItem(ctx context.Context, id string, req dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MinReorderLevel != nil {
		if *req.MinReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinReorderLevel = *req.MinReorderLevel
	}
	if req.UnitPrice != nil {
		item.UnitPrice = req.UnitPrice
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns one catalog item.
func (uc *CatalogUseCase) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// ListItems returns all items; a non-empty query filters by code or name.
func (uc *CatalogUseCase) ListItems(ctx context.Context, query string) ([]*entity.Item, error) {
	if q := strings.TrimSpace(query); q != "" {
		return uc.itemRepo.Search(q)
	}
	return uc.itemRepo.List()
}
