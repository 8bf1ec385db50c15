package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// StockHandler expone las vistas de stock y el historial de movimientos.
type StockHandler struct {
	uc *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// parseDate acepta RFC3339 o fecha simple (2006-01-02).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// ProductStock godoc
// @Summary      Stock de un producto por bodega
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ProductStock(c *fiber.Ctx) error {
	out, err := h.uc.ProductStock(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// WarehouseStock godoc
// @Summary      Stock de una bodega por producto
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/warehouses/{id}/stock [get]
func (h *StockHandler) WarehouseStock(c *fiber.Ctx) error {
	out, err := h.uc.WarehouseStock(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Movements godoc
// @Summary      Historial de movimientos del ledger
// @Description  Requiere exactamente uno de product_id o warehouse_id.
// @Tags         stock
// @Produce      json
// @Param        product_id    query  string  false  "ID del producto"
// @Param        warehouse_id  query  string  false  "ID de la bodega"
// @Param        from          query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to            query  string  false  "Fecha final (RFC3339 o YYYY-MM-DD)"
// @Param        limit         query  int     false  "Límite (máx 100)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "from inválida")
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "to inválida")
	}
	out, err := h.uc.Movements(c.Query("product_id"), c.Query("warehouse_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}
