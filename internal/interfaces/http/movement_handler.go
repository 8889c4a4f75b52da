package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/posting"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// MovementHandler maneja el registro y la consulta de movimientos (protegido).
type MovementHandler struct {
	poster *posting.Poster
}

// NewMovementHandler construye el handler.
func NewMovementHandler(poster *posting.Poster) *MovementHandler {
	return &MovementHandler{poster: poster}
}

// Post godoc
// @Summary      Registrar entrada o salida
// @Description  Registra un movimiento de inventario y ejecuta sus efectos:
//
//	ajuste de stock, alta de seriales (entradas), socio automático y
//	crédito de la contraparte (salidas).
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "type, item_code, quantity, supplier/destination, serial_numbers (multilínea), date AAAA-MM-DD"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Post(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	var in dto.PostMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.poster.Post(c.Context(), ownerID, in)
	if err != nil {
		var insuf *domain.InsufficientStockError
		if errors.As(err, &insuf) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:      "INSUFFICIENT_STOCK",
				Message:   "stock insuficiente en bodega principal",
				Available: &insuf.Available,
			})
		}
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "no existe un artículo con ese código"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del movimiento inválidos"})
		}
		// El movimiento puede haber quedado persistido aunque un efecto
		// posterior fallara; el cliente debe reconsultar el estado.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "IN | OUT"
// @Param        date    query  string  false  "AAAA-MM-DD"
// @Param        limit   query  int     false  "máximo de filas (default 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	filter := repository.MovementFilter{Type: c.Query("type")}
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
		}
		filter.Date = parsed
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	movements, err := h.poster.ListMovements(ownerID, filter, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewMovementResponses(movements))
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	mov, err := h.poster.GetMovement(ownerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewMovementResponse(mov))
}
