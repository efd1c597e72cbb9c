package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/billing"
	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// BillHandler maneja las peticiones HTTP de facturas.
type BillHandler struct {
	uc   *billing.InvoiceUseCase
	errs errorMapper
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.InvoiceUseCase, log *logger.Logger) *BillHandler {
	return &BillHandler{uc: uc, errs: errorMapper{log: log}}
}

// List godoc
// @Summary      Listar facturas con cliente, sucursales y detalle
// @Tags         bill
// @Produce      json
// @Success      200  {array}   object
// @Router       /api/bill [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear factura (cliente, sucursal, asociación, factura y detalle)
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "factura"
// @Success      201   {object}  dto.InvoiceCreationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/bill [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza fecha de entrega y valor.
// PUT /api/bill/:id
func (h *BillHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateInvoice(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus alterna Pendiente / Entregado.
// PUT /api/bill/:id/status
func (h *BillHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.ToggleStatus(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la factura con sus informes y detalle.
// DELETE /api/bill/:id
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.DeleteInvoice(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Factura eliminada correctamente"})
}
