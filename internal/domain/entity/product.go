package entity

import "github.com/shopspring/decimal"

// DefaultUnit unidad usada cuando el formulario no informa ninguna.
const DefaultUnit = "unidade"

// Product representa un producto del catálogo.
// CurrentStock es una caché desnormalizada del efecto del ledger:
// CurrentStock == InitialStock + Σ(entradas) − Σ(salidas).
type Product struct {
	ID           string
	Name         string
	Category     string
	Description  string
	Unit         string
	Tags         []string
	Image        string
	CurrentStock int
	InitialStock int // línea base de la proyección
	MinStock     int
	CostPrice    decimal.Decimal
	UserID       string // dueño (username del creador)
}

// OwnerID implementa access.Owned.
func (p *Product) OwnerID() string { return p.UserID }

// StockValue devuelve CurrentStock × CostPrice.
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
