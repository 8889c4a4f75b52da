package dto

import "time"

// SerialResponse representación pública de un número de serie.
type SerialResponse struct {
	ID           string    `json:"id"`
	SerialNumber string    `json:"serial_number"`
	ItemID       string    `json:"item_id"`
	ItemCode     string    `json:"item_code"`
	ItemName     string    `json:"item_name"`
	Status       string    `json:"status"`
	PurchaseDate string    `json:"purchase_date"`
	Supplier     string    `json:"supplier,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
