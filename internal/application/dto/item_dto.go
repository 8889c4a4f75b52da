package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items. El stock inicial va a la
// bodega principal; shop_stock arranca siempre en cero.
type CreateItemRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	MainStock   int64           `json:"main_stock"`
	SafetyStock int64           `json:"safety_stock"`
}

// UpdateItemRequest body para PUT /api/items/:id. La edición manual puede
// corregir contadores de stock; el invariante total = main + shop se
// recalcula del lado del servidor.
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	MainStock   int64           `json:"main_stock"`
	ShopStock   int64           `json:"shop_stock"`
	SafetyStock int64           `json:"safety_stock"`
}

// ItemResponse representación pública de un artículo.
type ItemResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	MainStock   int64           `json:"main_stock"`
	ShopStock   int64           `json:"shop_stock"`
	Total       int64           `json:"total"`
	SafetyStock int64           `json:"safety_stock"`
	BelowSafety bool            `json:"below_safety"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
