package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/application/usecase"
)

// CatalogHandler handles departments, categories and items.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepartmentRequest  true  "department"
// @Success      201   {object}  entity.Department
// @Router       /api/departments [post]
func (h *CatalogHandler) CreateDepartment(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if !parseBody(c, &in) {
		return nil
	}
	dept, err := h.uc.CreateDepartment(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dept)
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Router       /api/departments [get]
func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDepartment godoc
// @Summary      Get a department
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "department id"
// @Router       /api/departments/{id} [get]
func (h *CatalogHandler) GetDepartment(c *fiber.Ctx) error {
	out, err := h.uc.GetDepartment(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	cat, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateItem godoc
// @Summary      Create a catalog item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "item"
// @Success      201   {object}  entity.Item
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.CreateItem(c.UserContext(), usecase.CreateItemInput{
		CreateItemRequest: in,
		ActorID:           GetUserID(c),
		IPAddress:         c.IP(),
		UserAgent:         c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem godoc
// @Summary      Update a catalog item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "item id"
// @Router       /api/items/{id} [put]
func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// GetItem godoc
// @Summary      Get a catalog item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "item id"
// @Router       /api/items/{id} [get]
func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// ListItems godoc
// @Summary      List or search catalog items
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "filter by code or name"
// @Router       /api/items [get]
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
