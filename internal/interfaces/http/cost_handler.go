package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/costs"
	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// CostHandler gastos, gastos específicos, empleados e insumos.
type CostHandler struct {
	expenses  *costs.ExpenseUseCase
	employees *costs.EmployeeUseCase
	supplies  *costs.SupplyUseCase
	errs      errorMapper
}

// NewCostHandler construye el handler.
func NewCostHandler(expenses *costs.ExpenseUseCase, employees *costs.EmployeeUseCase, supplies *costs.SupplyUseCase, log *logger.Logger) *CostHandler {
	return &CostHandler{expenses: expenses, employees: employees, supplies: supplies, errs: errorMapper{log: log}}
}

// ListExpenses GET /api/cost
func (h *CostHandler) ListExpenses(c *fiber.Ctx) error {
	out, err := h.expenses.ListExpenses(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// ── Gastos específicos ────────────────────────────────────────────────────────

func (h *CostHandler) ListSpecific(c *fiber.Ctx) error {
	out, err := h.expenses.ListSpecific(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) GetSpecific(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.expenses.GetSpecific(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) CreateSpecific(c *fiber.Ctx) error {
	var in dto.SpecificCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.expenses.CreateSpecific(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CostHandler) UpdateSpecific(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.SpecificCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.expenses.UpdateSpecific(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) DeleteSpecific(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.expenses.DeleteSpecific(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Gasto específico eliminado"})
}

// ── Empleados ─────────────────────────────────────────────────────────────────

func (h *CostHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.employees.List(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.employees.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PayEmployee registra prima o liquidación.
// PUT /api/cost/employee/:id  {"tipo_pago": "prima"|"liquidacion", "monto": n}
func (h *CostHandler) PayEmployee(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.EmployeePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.employees.ApplyPayment(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Empleado eliminado"})
}

// ── Insumos ───────────────────────────────────────────────────────────────────

func (h *CostHandler) ListSupplies(c *fiber.Ctx) error {
	out, err := h.supplies.List(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) CreateSupply(c *fiber.Ctx) error {
	var in dto.SupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.supplies.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSupply reemplaza datos y detalle del insumo; los detalles que quedan sin
// insumo se eliminan.
func (h *CostHandler) UpdateSupply(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.SupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.supplies.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *CostHandler) DeleteSupply(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.supplies.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Insumo eliminado"})
}
