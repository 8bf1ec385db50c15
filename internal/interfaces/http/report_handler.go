package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/report"
)

// ReportHandler exporta reportes de stock por bodega.
type ReportHandler struct {
	uc *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar stock de una bodega
// @Description  Genera el reporte de existencias de la bodega en xlsx o pdf
// @Description  y lo entrega como descarga binaria (sin sobre JSON).
// @Tags         reports
// @Produce      application/octet-stream
// @Param        id      path   string  true   "ID de la bodega"
// @Param        format  query  string  false  "Formato (xlsx|pdf, por defecto xlsx)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/warehouses/{id}/stock/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", report.FormatXLSX)
	out, err := h.uc.Export(c.Context(), c.Params("id"), format)
	if err != nil {
		return respondDomainErr(c, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.FileName+`"`)
	return c.Send(out.Content)
}
