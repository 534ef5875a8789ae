package jsonstore

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// flexID acepta ids numéricos (versiones antiguas de json-server) o string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// productRecord forma de un producto en db.json (camelCase, igual que json-server).
type productRecord struct {
	ID           flexID      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Description  string      `json:"description"`
	Unit         string      `json:"unit"`
	Tags         []string    `json:"tags"`
	Image        string      `json:"image,omitempty"`
	CurrentStock int         `json:"currentStock"`
	InitialStock *int        `json:"initialStock,omitempty"`
	MinStock     int         `json:"minStock"`
	CostPrice    json.Number `json:"costPrice"`
	UserID       string      `json:"userId"`
}

// movementRecord forma de un movimiento en db.json.
type movementRecord struct {
	ID           flexID `json:"id"`
	ProductID    flexID `json:"productId"`
	ProductName  string `json:"productName"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	Observations string `json:"observations,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	UserID       string `json:"userId"`
}

func (r productRecord) toEntity() (*entity.Product, error) {
	cost := decimal.Zero
	if r.CostPrice != "" {
		var err error
		if cost, err = decimal.NewFromString(r.CostPrice.String()); err != nil {
			return nil, err
		}
	}
	p := &entity.Product{
		ID:           string(r.ID),
		Name:         r.Name,
		Category:     r.Category,
		Description:  r.Description,
		Unit:         r.Unit,
		Tags:         append([]string{}, r.Tags...),
		Image:        r.Image,
		CurrentStock: r.CurrentStock,
		MinStock:     r.MinStock,
		CostPrice:    cost,
		UserID:       r.UserID,
	}
	if p.Unit == "" {
		p.Unit = entity.DefaultUnit
	}
	if r.InitialStock != nil {
		p.InitialStock = *r.InitialStock
	}
	return p, nil
}

func productToRecord(p *entity.Product) productRecord {
	initial := p.InitialStock
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return productRecord{
		ID:           flexID(p.ID),
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Unit:         p.Unit,
		Tags:         tags,
		Image:        p.Image,
		CurrentStock: p.CurrentStock,
		InitialStock: &initial,
		MinStock:     p.MinStock,
		CostPrice:    json.Number(p.CostPrice.String()),
		UserID:       p.UserID,
	}
}

func (r movementRecord) toEntity() *entity.StockMovement {
	return &entity.StockMovement{
		ID:           string(r.ID),
		ProductID:    string(r.ProductID),
		ProductName:  r.ProductName,
		Type:         r.Type,
		Quantity:     r.Quantity,
		Reason:       r.Reason,
		Date:         r.Date,
		Observations: r.Observations,
		Timestamp:    r.Timestamp,
		UserID:       r.UserID,
	}
}

func movementToRecord(m *entity.StockMovement) movementRecord {
	return movementRecord{
		ID:           flexID(m.ID),
		ProductID:    flexID(m.ProductID),
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

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	return &c
}

func cloneMovement(m *entity.StockMovement) *entity.StockMovement {
	c := *m
	return &c
}
