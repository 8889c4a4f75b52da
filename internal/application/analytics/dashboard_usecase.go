// Package analytics arma las métricas del tablero: movimientos del día,
// artículos bajo stock de seguridad y resumen de clientes derivado de los
// movimientos de salida.
package analytics

import (
	"time"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// DashboardUseCase consultas de solo lectura para el tablero.
type DashboardUseCase struct {
	movements repository.MovementRepository
	items     repository.ItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(movements repository.MovementRepository, items repository.ItemRepository) *DashboardUseCase {
	return &DashboardUseCase{movements: movements, items: items}
}

// Summary calcula las métricas del día indicado (normalmente hoy).
func (uc *DashboardUseCase) Summary(ownerID string, day time.Time) (*dto.DashboardSummary, error) {
	todayIn, err := uc.movements.CountByTypeAndDate(ownerID, entity.MovementTypeIN, day)
	if err != nil {
		return nil, err
	}
	todayOut, err := uc.movements.CountByTypeAndDate(ownerID, entity.MovementTypeOUT, day)
	if err != nil {
		return nil, err
	}
	low, err := uc.items.ListBelowSafety(ownerID)
	if err != nil {
		return nil, err
	}

	lowItems := dto.NewItemResponses(low)

	return &dto.DashboardSummary{
		TodayIn:       todayIn,
		TodayOut:      todayOut,
		LowStockCount: len(lowItems),
		LowStockItems: lowItems,
	}, nil
}

// CustomerSummaries agrega los movimientos con teléfono de cliente: no existe
// una colección propia de clientes, se derivan del histórico de salidas.
func (uc *DashboardUseCase) CustomerSummaries(ownerID string) ([]dto.CustomerSummaryDTO, error) {
	rows, err := uc.movements.CustomerSummaries(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerSummaryDTO{
			Phone:            r.Phone,
			MovementCount:    r.MovementCount,
			TotalItems:       r.TotalItems,
			LastPurchaseDate: r.LastPurchaseDate.Format("2006-01-02"),
		})
	}
	return out, nil
}
