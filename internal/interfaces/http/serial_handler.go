package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/serial"
	"github.com/partes-app/partes-api/internal/domain"
)

// SerialHandler maneja la consulta de seriales y el cambio manual de estado
// (protegido). Las altas de seriales nacen siempre de una entrada; aquí no
// hay endpoint de creación.
type SerialHandler struct {
	registry *serial.Registry
}

// NewSerialHandler construye el handler.
func NewSerialHandler(registry *serial.Registry) *SerialHandler {
	return &SerialHandler{registry: registry}
}

// List godoc
// @Summary      Listar números de serie
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.SerialResponse
// @Router       /api/serials [get]
func (h *SerialHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	serials, err := h.registry.List(ownerID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewSerialResponses(serials))
}

// GetByID godoc
// @Summary      Obtener número de serie
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del serial"
// @Success      200  {object}  dto.SerialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{id} [get]
func (h *SerialHandler) GetByID(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	found, err := h.registry.Get(ownerID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewSerialResponse(found))
}

type updateSerialStatusRequest struct {
	Status string `json:"status"` // IN_STOCK | SOLD
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un serial
// @Description  Cambio manual IN_STOCK/SOLD. Las salidas no consumen seriales
//
//	automáticamente; este endpoint es la única vía de marcar un
//	serial como vendido.
//
// @Tags         serials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del serial"
// @Param        body  body  updateSerialStatusRequest  true  "status"
// @Success      200   {object}  dto.SerialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/serials/{id}/status [put]
func (h *SerialHandler) UpdateStatus(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	var in updateSerialStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.registry.UpdateStatus(ownerID, c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser IN_STOCK o SOLD"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewSerialResponse(updated))
}
