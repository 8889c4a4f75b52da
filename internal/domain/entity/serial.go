package entity

import "time"

// Estados del ciclo de vida de un número de serie.
const (
	SerialStatusInStock = "IN_STOCK"
	SerialStatusSold    = "SOLD"
)

// Serial es el registro de identidad de una unidad física de un artículo.
// Guarda la referencia estable al artículo (ItemID) y además snapshots de
// código y nombre para mostrar histórico aunque el artículo se renombre.
// La transición a SOLD no ocurre en el flujo de registro de movimientos:
// las salidas no consumen seriales específicos (limitación documentada).
type Serial struct {
	ID           string
	OwnerID      string
	SerialNumber string // único por dueño por convención, no forzado en BD
	ItemID       string
	ItemCode     string
	ItemName     string
	Status       string // IN_STOCK | SOLD
	PurchaseDate time.Time
	Supplier     string // snapshot del proveedor del ingreso
	CreatedAt    time.Time
}
