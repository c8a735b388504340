package product

import (
	"context"
	"net/http"
	"strconv"

	"stockledger/internal/api/response"
	"stockledger/internal/domain"
	"stockledger/internal/pkg/logger"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListProductsHandler lida com GET /v1/products?q=&category=&active=.
//
// @Summary  Lista o catálogo de produtos
// @Tags     products
// @Produce  json
// @Param    q         query string false "palavra-chave"
// @Param    category  query string false "categoria"
// @Param    active    query bool   false "somente ativos"
// @Success  200 {array} domain.Product
// @Router   /v1/products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	activeOnly, _ := strconv.ParseBool(q.Get("active"))

	products, err := h.Service.ListProducts(r.Context(), domain.ProductFilter{
		Keyword:    q.Get("q"),
		Category:   q.Get("category"),
		ActiveOnly: activeOnly,
	})
	response.Write(h.Logger, w, r, products, err, http.StatusOK)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
//
// @Summary  Busca um produto pelo ID
// @Tags     products
// @Produce  json
// @Param    id path string true "ID do produto"
// @Success  200 {object} domain.Product
// @Failure  404 {object} domain.ErrorResponse
// @Router   /v1/products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProductByID(r.Context(), r.PathValue("id"))
	response.Write(h.Logger, w, r, product, err, http.StatusOK)
}
