package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/partes-app/partes-api/internal/application/analytics"
	"github.com/partes-app/partes-api/internal/application/dto"
)

// DashboardHandler maneja las vistas agregadas del tablero (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Description  Movimientos del día (entradas/salidas) y artículos por debajo
//
//	del stock de seguridad.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "AAAA-MM-DD (default: hoy)"
// @Success      200  {object}  dto.DashboardSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
		}
		day = parsed
	}
	summary, err := h.uc.Summary(ownerID, day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Customers godoc
// @Summary      Clientes derivados de salidas
// @Description  Agrega las salidas por teléfono de cliente: cantidad de
//
//	compras, unidades y fecha de la última compra.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomerSummaryDTO
// @Router       /api/dashboard/customers [get]
func (h *DashboardHandler) Customers(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	customers, err := h.uc.CustomerSummaries(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(customers)
}
