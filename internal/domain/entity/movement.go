package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es el registro inmutable de una entrada o salida de inventario.
// ItemCode, ItemName y Price son snapshots tomados al momento del registro;
// una edición posterior del artículo no altera el histórico. El núcleo nunca
// actualiza ni borra un Movement una vez creado.
type Movement struct {
	ID            string
	OwnerID       string
	Type          string // IN | OUT
	ItemID        string
	ItemCode      string
	ItemName      string
	Price         decimal.Decimal
	Quantity      int64 // siempre positivo; el signo lo da Type
	Supplier      string // contraparte de una entrada
	Destination   string // contraparte de una salida
	CustomerPhone string
	Notes         string
	SerialNumbers []string
	Date          time.Time
	CreatedAt     time.Time
}
