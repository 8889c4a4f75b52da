package dto

// DashboardSummary métricas del tablero principal: movimientos del día y
// artículos por debajo del stock de seguridad.
type DashboardSummary struct {
	TodayIn       int64          `json:"today_in"`
	TodayOut      int64          `json:"today_out"`
	LowStockCount int            `json:"low_stock_count"`
	LowStockItems []ItemResponse `json:"low_stock_items"`
}

// CustomerSummaryDTO actividad de un cliente identificado por teléfono,
// derivada de los movimientos de salida.
type CustomerSummaryDTO struct {
	Phone            string `json:"phone"`
	MovementCount    int64  `json:"movement_count"`
	TotalItems       int64  `json:"total_items"`
	LastPurchaseDate string `json:"last_purchase_date"`
}
