package dto

import (
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// ProductFromEntity mapea un producto e incluye el indicador de stock bajo.
func ProductFromEntity(p *entity.Product) ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Unit:         p.Unit,
		Tags:         tags,
		Image:        p.Image,
		CurrentStock: p.CurrentStock,
		InitialStock: p.InitialStock,
		MinStock:     p.MinStock,
		CostPrice:    p.CostPrice,
		StockValue:   p.StockValue(),
		LowStock:     stock.IsProductLowStock(p),
		UserID:       p.UserID,
	}
}

// ProductsFromEntities mapea una lista preservando el orden.
func ProductsFromEntities(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProductFromEntity(p))
	}
	return out
}

// MovementFromEntity mapea un movimiento.
func MovementFromEntity(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		Date:         m.Date,
		Observations: m.Observations,
		Timestamp:    m.Timestamp,
		UserID:       m.UserID,
	}
}

// MovementsFromEntities mapea una lista preservando el orden.
func MovementsFromEntities(list []*entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MovementFromEntity(m))
	}
	return out
}

// FilterFromRequest convierte el filtro de query string al del dominio.
func FilterFromRequest(f MovementFilterRequest) stock.MovementFilter {
	return stock.MovementFilter{
		ProductID: f.ProductID,
		Type:      f.Type,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}
}

// DailyTotalsFromDomain mapea la serie diaria.
func DailyTotalsFromDomain(in []stock.DailyTotal) []DailyTotalDTO {
	out := make([]DailyTotalDTO, 0, len(in))
	for _, d := range in {
		out = append(out, DailyTotalDTO{Date: d.Date, Entries: d.Entries, Exits: d.Exits})
	}
	return out
}

// CategoryTotalsFromDomain mapea la serie por categoría.
func CategoryTotalsFromDomain(in []stock.CategoryTotal) []CategoryTotalDTO {
	out := make([]CategoryTotalDTO, 0, len(in))
	for _, c := range in {
		out = append(out, CategoryTotalDTO{Category: c.Category, Quantity: c.Quantity})
	}
	return out
}

// UserFromEntity mapea una credencial sin exponer la contraseña.
func UserFromEntity(c *entity.Credential) UserResponse {
	return UserResponse{Username: c.Username, Role: c.Role, Unit: c.Unit}
}

// SessionUserFromEntity usuario de la sesión sin contraseña.
func SessionUserFromEntity(c *entity.Credential) SessionUserDTO {
	return SessionUserDTO{Username: c.Username, Role: c.Role, Unit: c.Unit}
}
