package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner representa un socio comercial: proveedor (entradas) o cliente/destino
// (salidas) con relación de crédito opcional. CurrentCredit puede superar
// CreditLimit; el exceso solo se señala en la capa de presentación.
type Partner struct {
	ID            string
	OwnerID       string
	Code          string // código asignado por el usuario, o AUTO-… si fue auto-registrado
	Name          string // clave natural usada por los movimientos (ver notas de diseño)
	CEO           string
	Type          string // 공급업체/매출처 en el sistema original; texto libre
	Items         string // líneas de producto que comercia
	CreditLimit   decimal.Decimal
	CurrentCredit decimal.Decimal // saldo adeudado acumulado por salidas a crédito
	Manager       string
	Phone         string
	Email         string
	Address       string
	PaymentTerms  string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
