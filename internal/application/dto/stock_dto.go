package dto

import "github.com/shopspring/decimal"

// StockDriftDTO diferencia entre el stock cacheado y el proyectado desde el ledger.
type StockDriftDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Cached      int    `json:"cached"`
	Expected    int    `json:"expected"`
	Delta       int    `json:"delta"`
}

// ReconcileResponse resultado de la reconciliación.
type ReconcileResponse struct {
	Checked int             `json:"checked"`
	Drift   []StockDriftDTO `json:"drift"`
}

// ReplenishmentSuggestionDTO producto con stock bajo y la cantidad sugerida de reposición.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	Category           string          `json:"category"`
	Unit               string          `json:"unit"`
	CurrentStock       int             `json:"currentStock"`
	MinStock           int             `json:"minStock"`
	IdealStock         int             `json:"idealStock"`
	SuggestedQuantity  int             `json:"suggestedQuantity"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"`
	ExitsLast30Days    int             `json:"exitsLast30Days"`
	Priority           int             `json:"priority"` // 1 = más urgente
}

// ReplenishmentListResponse sugerencias ordenadas por prioridad.
type ReplenishmentListResponse struct {
	Items []ReplenishmentSuggestionDTO `json:"items"`
	Total int                          `json:"total"`
}
