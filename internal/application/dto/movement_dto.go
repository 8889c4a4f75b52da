package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostMovementRequest body para POST /api/movements.
// ItemCode referencia el código legible del artículo. SerialNumbers es texto
// multilínea: un serial por línea, las líneas en blanco se descartan.
// Date en formato AAAA-MM-DD; vacío = hoy.
type PostMovementRequest struct {
	Type          string `json:"type"` // IN | OUT
	ItemCode      string `json:"item_code"`
	Quantity      int64  `json:"quantity"`
	Supplier      string `json:"supplier"`    // contraparte de IN (opcional)
	Destination   string `json:"destination"` // contraparte de OUT (obligatoria)
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
	SerialNumbers string `json:"serial_numbers"`
	Date          string `json:"date"`
}

// MovementResponse representación pública de un movimiento registrado.
type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	ItemID        string          `json:"item_id"`
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	Supplier      string          `json:"supplier,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	SerialNumbers []string        `json:"serial_numbers,omitempty"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}
