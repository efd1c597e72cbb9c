package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/application/reports"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// ReportHandler consulta, búsqueda, tabla y PDF de reportes por tipo.
type ReportHandler struct {
	uc   *reports.UseCase
	errs errorMapper
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, errs: errorMapper{log: log}}
}

// Fetch godoc
// @Summary      Registros anidados del tipo de reporte
// @Tags         reports
// @Produce      json
// @Param        type  path  string  true  "informe | gastos | factura"
// @Success      200   {array}   object
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/{type} [get]
func (h *ReportHandler) Fetch(c *fiber.Ctx) error {
	out, err := h.uc.Fetch(c.UserContext(), c.Params("type"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Búsqueda parcial sobre los campos del tipo
// @Tags         reports
// @Produce      json
// @Param        type  path   string  true  "informe | gastos | factura"
// @Param        term  query  string  true  "término"
// @Success      200   {array}   object
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/search [get]
func (h *ReportHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Params("type"), c.Query("term"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Table convierte los registros recibidos en filas planas.
// POST /api/reports/:type/table
func (h *ReportHandler) Table(c *fiber.Ctx) error {
	var in dto.ReportRecordsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return h.errs.write(c, err)
	}
	t, err := h.uc.Table(c.Params("type"), toRecords(in.Data))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.ReportTableResponse{
		Type:           string(t.Type),
		Title:          t.Title,
		Headers:        t.Headers,
		Rows:           t.Rows,
		Total:          t.Total,
		FormattedTotal: t.FormattedTotal,
	})
}

// PDF genera el PDF con los registros recibidos.
// POST /api/reports/:type/pdf
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	var in dto.ReportRecordsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return h.errs.write(c, err)
	}
	doc, filename, err := h.uc.PDF(c.Params("type"), toRecords(in.Data))
	if err != nil {
		return h.errs.write(c, err)
	}
	return sendPDF(c, doc, filename)
}

// PDFFromStore genera el PDF leyendo del store; con ?term= filtra primero.
// GET /api/reports/:type/pdf
func (h *ReportHandler) PDFFromStore(c *fiber.Ctx) error {
	doc, filename, err := h.uc.PDFFromStore(c.UserContext(), c.Params("type"), c.Query("term"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return sendPDF(c, doc, filename)
}

func sendPDF(c *fiber.Ctx, doc []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}

func toRecords(data []map[string]any) []report.Record {
	out := make([]report.Record, len(data))
	for i, d := range data {
		out[i] = d
	}
	return out
}
