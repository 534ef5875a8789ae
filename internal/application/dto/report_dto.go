package dto

// MovementTotalsDTO totales de un conjunto de movimientos.
type MovementTotalsDTO struct {
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
	Count   int `json:"count"`
}

// MovementReportDTO respuesta de GET /api/reports/movements; también alimenta las exportaciones.
type MovementReportDTO struct {
	Filter      MovementFilterRequest `json:"filter"`
	Movements   []MovementResponse    `json:"movements"`
	Totals      MovementTotalsDTO     `json:"totals"`
	Daily       []DailyTotalDTO       `json:"daily"`
	ByCategory  []CategoryTotalDTO    `json:"byCategory"`
	GeneratedAt string                `json:"generatedAt"` // YYYY-MM-DD
}
