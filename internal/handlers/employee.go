package handlers

import (
	"walletdesk/internal/middleware"
	"walletdesk/internal/models"
	"walletdesk/internal/services/auth"
	"walletdesk/internal/services/employee"
	"walletdesk/internal/utils"
	"walletdesk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler exposes employee administration. Every route is
// admin-gated.
type EmployeeHandler struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type createEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Surname      string `json:"surname" validate:"required"`
	Password     string `json:"password" validate:"required"`
	Role         string `json:"role" validate:"required,employee_role"`
}

type updateEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required,employee_role"`
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	if err := auth.CanManageEmployees(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	created, err := h.employeeService.Create(c.Context(),
		req.EmployeeCode, req.Name, req.Surname, req.Password, models.EmployeeRole(req.Role))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, created)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	if err := auth.CanManageEmployees(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid employee id")
	}

	found, err := h.employeeService.GetByID(c.Context(), id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, found)
}

// List returns employees, optionally filtered by ?role=.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	if err := auth.CanManageEmployees(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	if role := c.Query("role"); role != "" {
		r := models.EmployeeRole(role)
		if !r.Valid() {
			return utils.BadRequest(c, "invalid employee role")
		}
		employees, err := h.employeeService.ListByRole(c.Context(), r)
		if err != nil {
			return utils.DomainError(c, err)
		}
		return utils.Success(c, fiber.Map{"employees": employees})
	}

	employees, err := h.employeeService.ListAll(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"employees": employees})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	if err := auth.CanManageEmployees(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid employee id")
	}

	var req updateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	updated, err := h.employeeService.Update(c.Context(),
		id, req.Name, req.Surname, req.Password, models.EmployeeRole(req.Role))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := auth.CanManageEmployees(middleware.CallerIdentity(c)); err != nil {
		return utils.DomainError(c, err)
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid employee id")
	}

	if err := h.employeeService.Delete(c.Context(), id); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "employee deleted"})
}
