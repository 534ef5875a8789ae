package jsonstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación de repository.ProductRepository sobre la colección products.
type ProductRepository struct {
	db accessor
}

// NewProductRepository construye el repositorio sobre el Store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{db: store}
}

func indexOfProduct(st *state, id string) int {
	for i, p := range st.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Create inserta un producto; si no tiene ID se genera un UUID.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.db.write(ctx, func(st *state) error {
		if indexOfProduct(st, product.ID) >= 0 {
			return domain.ErrDuplicate
		}
		st.products = append(st.products, cloneProduct(product))
		return nil
	})
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.db.read(func(st *state) error {
		if i := indexOfProduct(st, id); i >= 0 {
			out = cloneProduct(st.products[i])
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de una transacción el Store ya tiene el lock exclusivo; equivale a GetByID.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el registro completo.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.write(ctx, func(st *state) error {
		i := indexOfProduct(st, product.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.products[i] = cloneProduct(product)
		return nil
	})
}

// UpdateStock persiste el stock actual cacheado.
func (r *ProductRepository) UpdateStock(ctx context.Context, productID string, currentStock int) error {
	return r.db.write(ctx, func(st *state) error {
		i := indexOfProduct(st, productID)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.products[i].CurrentStock = currentStock
		return nil
	})
}

// List devuelve los productos visibles para scope en orden de inserción.
func (r *ProductRepository) List(_ context.Context, scope access.Scope) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.db.read(func(st *state) error {
		visible := access.Filter(st.products, scope)
		out = make([]*entity.Product, len(visible))
		for i, p := range visible {
			out[i] = cloneProduct(p)
		}
		return nil
	})
	return out, err
}

// Delete elimina el producto; sus movimientos se conservan.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.write(ctx, func(st *state) error {
		i := indexOfProduct(st, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.products = append(st.products[:i], st.products[i+1:]...)
		return nil
	})
}
