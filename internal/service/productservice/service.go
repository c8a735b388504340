package productservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
)

// ProductRepository define o contrato que este Serviço espera do catálogo.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// Service expõe o catálogo (somente leitura) para a camada de apresentação.
type Service struct {
	repo   ProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetProductByID busca um produto pelo ID.
func (s *Service) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, apperror.NewValidationError("ID do produto é obrigatório.")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id))
		}
		s.logger.Error("Falha ao buscar produto no catálogo.", err)
		return domain.Product{}, err
	}
	return product, nil
}

// ListProducts lista o catálogo com filtro por palavra-chave, categoria e status.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.logger.Debug("Listando produtos do catálogo.", map[string]interface{}{
		"keyword":     filter.Keyword,
		"category":    filter.Category,
		"active_only": filter.ActiveOnly,
	})

	products, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Falha ao listar produtos no catálogo.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar produtos.", err)
	}
	return products, nil
}
