package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockpro/internal/application/analytics"
	"github.com/jhoicas/stockpro/internal/application/dto"
)

// ReportHandler reporte de movimientos y sus exportaciones.
type ReportHandler struct {
	uc  *appanalytics.ReportUseCase
	now func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase, now func() time.Time) *ReportHandler {
	return &ReportHandler{uc: uc, now: now}
}

// Movements godoc
// @Summary      Reporte de movimientos
// @Description  Sin fechas se usan los últimos 30 días.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        productId  query  string  false  "ID del producto (all = todos)"
// @Param        type       query  string  false  "entry | exit | all"
// @Param        startDate  query  string  false  "Desde (AAAA-MM-DD)"
// @Param        endDate    query  string  false  "Hasta (AAAA-MM-DD)"
// @Success      200  {object}  dto.MovementReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var filter dto.MovementFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Build(c.UserContext(), GetUser(c), filter, h.now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte de movimientos
// @Description  Archivo relatorio-movimentacoes-AAAA-MM-DD.pdf|csv con los mismos filtros del reporte.
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/pdf
// @Produce      text/csv
// @Param        format     query  string  true   "pdf | csv"
// @Param        productId  query  string  false  "ID del producto (all = todos)"
// @Param        type       query  string  false  "entry | exit | all"
// @Param        startDate  query  string  false  "Desde (AAAA-MM-DD)"
// @Param        endDate    query  string  false  "Hasta (AAAA-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var filter dto.MovementFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	file, err := h.uc.Export(c.UserContext(), GetUser(c), c.Query("format", "pdf"), filter, h.now())
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}
