package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// PartyHandler maneja las peticiones HTTP para contrapartes (proveedores y clientes).
type PartyHandler struct {
	uc *usecase.PartyUseCase
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *usecase.PartyUseCase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contraparte
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "Datos de la contraparte (type: seller o buyer)"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/parties [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "contraparte creada", out)
}

// GetByID godoc
// @Summary      Obtener contraparte por ID
// @Tags         parties
// @Produce      json
// @Param        id   path  string  true  "ID de la contraparte"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/parties/{id} [get]
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	if out == nil {
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "contraparte no encontrada")
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Update godoc
// @Summary      Actualizar contraparte
// @Description  El tipo (seller/buyer) es inmutable.
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la contraparte"
// @Param        body  body  dto.UpdatePartyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/parties/{id} [put]
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "contraparte actualizada", out)
}

// List godoc
// @Summary      Listar contrapartes
// @Tags         parties
// @Produce      json
// @Param        type    query  string  false  "Filtro por tipo (seller|buyer)"
// @Param        limit   query  int     false  "Límite (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/parties [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "", out)
}

// Delete godoc
// @Summary      Eliminar contraparte
// @Tags         parties
// @Produce      json
// @Param        id   path  string  true  "ID de la contraparte"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/parties/{id} [delete]
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, "contraparte eliminada", nil)
}
