package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario de partes de computador.
// Code es el código legible asignado por el usuario (único por dueño).
// Invariante: Total == MainStock + ShopStock después de cada mutación.
// ShopStock existe en el modelo pero hoy ningún registro de movimiento lo toca.
type Item struct {
	ID          string
	OwnerID     string
	Code        string
	Name        string
	Category    string
	Price       decimal.Decimal // precio unitario de venta
	MainStock   int64           // bodega principal
	ShopStock   int64           // punto de venta (siempre 0 por ahora)
	Total       int64
	SafetyStock int64 // umbral de reposición
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowSafety indica si el artículo está por debajo de su stock de seguridad.
func (i *Item) BelowSafety() bool {
	return i.Total < i.SafetyStock
}
