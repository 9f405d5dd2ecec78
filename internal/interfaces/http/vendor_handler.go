package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/application/usecase"
)

// VendorHandler handles the supplier registry.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler builds the vendor handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create godoc
// @Summary      Register a vendor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "vendor"
// @Success      201   {object}  entity.Vendor
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if !parseBody(c, &in) {
		return nil
	}
	vendor, err := h.uc.Create(c.UserContext(), usecase.CreateVendorInput{
		CreateVendorRequest: in,
		ActorID:             GetUserID(c),
		IPAddress:           c.IP(),
		UserAgent:           c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// Update godoc
// @Summary      Update a vendor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "vendor id"
// @Param        body  body  dto.UpdateVendorRequest  true  "fields to change"
// @Router       /api/vendors/{id} [patch]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendorRequest
	if !parseBody(c, &in) {
		return nil
	}
	vendor, err := h.uc.Update(c.UserContext(), usecase.UpdateVendorInput{
		UpdateVendorRequest: in,
		VendorID:            c.Params("id"),
		ActorID:             GetUserID(c),
		IPAddress:           c.IP(),
		UserAgent:           c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendor)
}

// GetByID godoc
// @Summary      Get a vendor
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "vendor id"
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	vendor, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendor)
}

// List godoc
// @Summary      List vendors
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "only ACTIVE vendors"
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
