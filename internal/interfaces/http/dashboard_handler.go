package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/dashboard"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// DashboardHandler datos del tablero.
type DashboardHandler struct {
	uc   *dashboard.UseCase
	errs errorMapper
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, errs: errorMapper{log: log}}
}

// GetData devuelve ingresos por factura y gastos, más recientes primero.
// GET /api/dashboard-data
//
// Código o fecha ausentes se muestran como "Desconocido".
func (h *DashboardHandler) GetData(c *fiber.Ctx) error {
	out, err := h.uc.GetData(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
