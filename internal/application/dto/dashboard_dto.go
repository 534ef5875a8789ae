package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts    int                `json:"totalProducts"`
	TotalStock       int                `json:"totalStock"`
	TotalValue       decimal.Decimal    `json:"totalValue"` // Σ currentStock × costPrice
	LowStockCount    int                `json:"lowStockCount"`
	LowStockProducts []ProductResponse  `json:"lowStockProducts"`
	Last7Days        []DailyTotalDTO    `json:"last7Days"` // hoy incluido, orden ascendente
	StockByCategory  []CategoryTotalDTO `json:"stockByCategory"`
	RecentMovements  []MovementResponse `json:"recentMovements"`
	DateLabel        string             `json:"dateLabel"` // ej: "Outubro 2026"
}

// DailyTotalDTO entradas y salidas de un día.
type DailyTotalDTO struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
	Exits   int    `json:"exits"`
}

// CategoryTotalDTO cantidad agregada de una categoría.
type CategoryTotalDTO struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}
