package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	Tags         []string        `json:"tags"`
	Image        string          `json:"image"`
	CurrentStock int             `json:"currentStock" validate:"min=0"`
	MinStock     int             `json:"minStock" validate:"min=0"`
	CostPrice    decimal.Decimal `json:"costPrice"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no se modifican.
// Cambiar currentStock aquí es un ajuste manual: desplaza la línea base en el mismo delta.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	Unit         *string          `json:"unit"`
	Tags         []string         `json:"tags"`
	Image        *string          `json:"image"`
	CurrentStock *int             `json:"currentStock"`
	MinStock     *int             `json:"minStock"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
}

// ProductFilter parámetros de búsqueda del catálogo.
type ProductFilter struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	Sort     string `query:"sort"` // "name" o vacío
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	Tags         []string        `json:"tags"`
	Image        string          `json:"image,omitempty"`
	CurrentStock int             `json:"currentStock"`
	InitialStock int             `json:"initialStock"`
	MinStock     int             `json:"minStock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	StockValue   decimal.Decimal `json:"stockValue"`
	LowStock     bool            `json:"lowStock"`
	UserID       string          `json:"userId"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryListResponse categorías distintas del catálogo visible.
type CategoryListResponse struct {
	Items []string `json:"items"`
}
