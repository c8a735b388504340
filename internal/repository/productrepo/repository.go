package productrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"stockledger/internal/domain"
	"stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
)

// ProductRepository é o catálogo de produtos em memória (dado de referência).
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
	logger   logger.Logger
}

// NewProductRepository cria o catálogo a partir dos produtos informados, preservando a ordem.
func NewProductRepository(products []domain.Product, logger logger.Logger) (*ProductRepository, error) {
	r := &ProductRepository{
		products: make(map[string]domain.Product, len(products)),
		logger:   logger,
	}
	for _, p := range products {
		if p.ID == "" || p.Code == "" || p.Name == "" {
			return nil, errors.NewValidationError("ID, código e nome são obrigatórios para o produto.")
		}
		if _, exists := r.products[p.ID]; exists {
			return nil, errors.NewConflictError(fmt.Sprintf("Produto %s duplicado no catálogo.", p.ID))
		}
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

// FindByID busca um produto pelo ID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, errors.NewInternalError("Operação cancelada.", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		r.logger.Debug("Produto não encontrado no catálogo.", map[string]interface{}{"product_id": id})
		return domain.Product{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe no catálogo.", id))
	}
	return p, nil
}

// FindAll lista os produtos que atendem ao filtro, na ordem de cadastro.
func (r *ProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternalError("Operação cancelada.", err)
	}

	fold := cases.Fold()
	keyword := fold.String(strings.TrimSpace(filter.Keyword))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.products[id]
		if filter.ActiveOnly && !p.IsActive() {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(fold.String(p.Name), keyword) &&
			!strings.Contains(fold.String(p.NameEn), keyword) &&
			!strings.Contains(fold.String(p.Code), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
