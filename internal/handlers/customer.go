package handlers

import (
	"walletdesk/internal/middleware"
	"walletdesk/internal/services/auth"
	"walletdesk/internal/services/customer"
	"walletdesk/internal/utils"
	"walletdesk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type createCustomerRequest struct {
	NationalID string `json:"national_id" validate:"required,national_id"`
	Name       string `json:"name" validate:"required"`
	Surname    string `json:"surname" validate:"required"`
}

type updateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

// Create onboards a customer. Open to staff and to self-service signup.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	if err := auth.CanOnboardCustomer(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	created, err := h.customerService.Create(c.Context(), req.NationalID, req.Name, req.Surname)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, created)
}

// Get returns one customer. Customers see only themselves.
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}

	if err := auth.CanViewCustomerScope(middleware.CallerIdentity(c), id); err != nil {
		return utils.DomainError(c, err)
	}

	found, err := h.customerService.GetByID(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, found)
}

// List returns all customers. Staff only.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if err := auth.CanViewAll(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	customers, err := h.customerService.ListAll(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"customers": customers})
}

// Update changes the display fields. Staff only; the national id is fixed.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	if err := auth.CanManageCustomers(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}

	var req updateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	updated, err := h.customerService.Update(c.Context(), id, req.Name, req.Surname)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

// Delete removes a customer. Staff only.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := auth.CanManageCustomers(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}

	if err := h.customerService.Delete(c.Context(), id); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "customer deleted"})
}
