package repository

import (
	"time"

	"github.com/partes-app/partes-api/internal/domain/entity"
)

// MovementFilter filtros para el listado de movimientos.
// Type vacío = todos; Date cero = todas las fechas.
type MovementFilter struct {
	Type string
	Date time.Time
}

// CustomerSummary resume la actividad de un cliente identificado por teléfono,
// derivada de los movimientos de salida (no existe colección propia de clientes).
type CustomerSummary struct {
	Phone            string
	MovementCount    int64
	TotalItems       int64
	LastPurchaseDate time.Time
}

// MovementRepository define el puerto de persistencia para movimientos.
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(ownerID, id string) (*entity.Movement, error)
	ListByOwner(ownerID string, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	// CountByTypeAndDate cuenta movimientos de un tipo en una fecha (para el tablero).
	CountByTypeAndDate(ownerID, movType string, date time.Time) (int64, error)
	// CustomerSummaries agrega movimientos con teléfono de cliente por teléfono.
	CustomerSummaries(ownerID string) ([]CustomerSummary, error)
}
