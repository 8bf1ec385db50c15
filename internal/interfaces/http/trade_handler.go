package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/trade"
)

// TradeHandler maneja compras, ventas y devoluciones.
type TradeHandler struct {
	uc *trade.TradeUseCase
}

// NewTradeHandler construye el handler.
func NewTradeHandler(uc *trade.TradeUseCase) *TradeHandler {
	return &TradeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción comercial
// @Description  Aplica los deltas de stock de todas las líneas en una sola
// @Description  transacción de base de datos. Si alguna línea dejaría stock
// @Description  negativo, nada se persiste y responde 409 INSUFFICIENT_STOCK.
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTradeRequest  true  "Transacción (type: PURCHASE|SALE|PURCHASE_RETURN|SALE_RETURN)"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/trades [post]
func (h *TradeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTradeRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "transacción registrada", out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         trades
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/trades/{id} [get]
func (h *TradeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "transacción no encontrada")
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Update godoc
// @Summary      Reemplazar transacción
// @Description  Reversa las líneas originales en el ledger y aplica las nuevas,
// @Description  todo dentro de una sola transacción de base de datos.
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTradeRequest  true  "Transacción de reemplazo"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/trades/{id} [put]
func (h *TradeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTradeRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "transacción actualizada", out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Description  Solo las ventas (SALE) admiten borrado; el stock vendido
// @Description  regresa a sus bodegas. Otros tipos responden 400 VALIDATION.
// @Tags         trades
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/trades/{id} [delete]
func (h *TradeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "transacción eliminada", nil)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         trades
// @Produce      json
// @Param        type        query  string  false  "Filtro por tipo (PURCHASE|SALE|PURCHASE_RETURN|SALE_RETURN)"
// @Param        invoice_no  query  string  false  "Filtro por número de factura"
// @Param        limit       query  int     false  "Límite (máx 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/trades [get]
func (h *TradeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("type"), c.Query("invoice_no"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}
