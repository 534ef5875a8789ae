package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// ProductUseCase casos de uso del catálogo. El stock se mueve vía movimientos; un cambio
// manual de currentStock en la edición desplaza la línea base para no romper la proyección.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto cuyo dueño es el usuario que actúa.
func (uc *ProductUseCase) Create(ctx context.Context, actor *entity.Credential, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if err := validateProduct(name, category, in.MinStock, in.CostPrice); err != nil {
		return nil, err
	}
	if in.CurrentStock < 0 {
		return nil, fmt.Errorf("%w: currentStock no puede ser negativo", domain.ErrInvalidInput)
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.DefaultUnit
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Category:     category,
		Description:  strings.TrimSpace(in.Description),
		Unit:         unit,
		Tags:         NormalizeTags(in.Tags),
		Image:        in.Image,
		CurrentStock: in.CurrentStock,
		InitialStock: in.CurrentStock,
		MinStock:     in.MinStock,
		CostPrice:    in.CostPrice,
		UserID:       actor.Username,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(product)
	return &out, nil
}

// GetByID obtiene un producto visible para el usuario que actúa.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor *entity.Credential, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(product, actor); err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(product)
	return &out, nil
}

// Update aplica los campos informados dentro de una transacción. El dueño no cambia.
func (uc *ProductUseCase) Update(ctx context.Context, actor *entity.Credential, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := checkOwner(product, actor); err != nil {
			return err
		}
		if err := applyUpdate(product, in); err != nil {
			return err
		}
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(updated)
	return &out, nil
}

func applyUpdate(p *entity.Product, in dto.UpdateProductRequest) error {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Unit != nil {
		p.Unit = strings.TrimSpace(*in.Unit)
		if p.Unit == "" {
			p.Unit = entity.DefaultUnit
		}
	}
	if in.Tags != nil {
		p.Tags = NormalizeTags(in.Tags)
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.CostPrice != nil {
		p.CostPrice = *in.CostPrice
	}
	if in.CurrentStock != nil {
		// ajuste manual: la línea base acompaña al stock
		p.InitialStock += *in.CurrentStock - p.CurrentStock
		p.CurrentStock = *in.CurrentStock
	}
	return validateProduct(p.Name, p.Category, p.MinStock, p.CostPrice)
}

// Delete elimina el producto; sus movimientos quedan en el ledger.
func (uc *ProductUseCase) Delete(ctx context.Context, actor *entity.Credential, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwner(product, actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List catálogo visible, opcionalmente filtrado por texto (nombre, descripción, tags) y categoría.
func (uc *ProductUseCase) List(ctx context.Context, actor *entity.Credential, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(actor))
	if err != nil {
		return nil, err
	}
	list = filterProducts(list, filter)
	if filter.Sort == SortByName {
		sortByName(list)
	}
	return &dto.ProductListResponse{Items: dto.ProductsFromEntities(list), Total: len(list)}, nil
}

// LowStock productos visibles con currentStock <= minStock.
func (uc *ProductUseCase) LowStock(ctx context.Context, actor *entity.Credential) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(actor))
	if err != nil {
		return nil, err
	}
	low := stock.LowStock(list)
	return &dto.ProductListResponse{Items: dto.ProductsFromEntities(low), Total: len(low)}, nil
}

// Categories categorías distintas del catálogo visible, en orden alfabético pt-BR.
func (uc *ProductUseCase) Categories(ctx context.Context, actor *entity.Credential) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(actor))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	items := make([]string, 0)
	for _, p := range list {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			items = append(items, p.Category)
		}
	}
	collate.New(language.BrazilianPortuguese).SortStrings(items)
	return &dto.CategoryListResponse{Items: items}, nil
}

func checkOwner(p *entity.Product, actor *entity.Credential) error {
	if p == nil {
		return domain.ErrNotFound
	}
	if !access.ScopeFor(actor).Allows(p.UserID) {
		return domain.ErrForbidden
	}
	return nil
}

func validateProduct(name, category string, minStock int, cost decimal.Decimal) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	case category == "":
		return fmt.Errorf("%w: category es obligatorio", domain.ErrInvalidInput)
	case minStock < 0:
		return fmt.Errorf("%w: minStock no puede ser negativo", domain.ErrInvalidInput)
	case cost.IsNegative():
		return fmt.Errorf("%w: costPrice no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// NormalizeTags recorta, descarta vacíos y elimina repetidos exactos, conservando la primera
// aparición. "Cabo" y "cabo" son tags distintos.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Fold normaliza texto para búsqueda: sin acentos y con case folding.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	return cases.Fold().String(plain)
}

func filterProducts(list []*entity.Product, f dto.ProductFilter) []*entity.Product {
	q := Fold(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)
	if category == stock.FilterAll {
		category = ""
	}
	if q == "" && category == "" {
		return list
	}
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p *entity.Product, folded string) bool {
	if strings.Contains(Fold(p.Name), folded) || strings.Contains(Fold(p.Description), folded) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(Fold(t), folded) {
			return true
		}
	}
	return false
}

// SortByName valor de ?sort= para orden alfabético; por defecto se respeta el orden de alta.
const SortByName = "name"

// sortByName orden alfabético pt-BR estable.
func sortByName(list []*entity.Product) {
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(list, func(i, j int) bool {
		return c.CompareString(list[i].Name, list[j].Name) < 0
	})
}
