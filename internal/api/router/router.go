package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "stockledger/docs" // registra a especificação OpenAPI
	"stockledger/internal/api/product"
	"stockledger/internal/api/stock"
	"stockledger/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados e os middlewares globais, do mais externo ao mais interno.
func NewRouter(productHandler *product.Handler, stockHandler *stock.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// --- Health Check ---
	mux.HandleFunc("GET /ping", PingHandler)

	// --- Catálogo (somente leitura) ---
	mux.HandleFunc("GET /v1/products", productHandler.ListProductsHandler)
	mux.HandleFunc("GET /v1/products/{id}", productHandler.GetProductByIDHandler)

	// --- Ledger de estoque ---
	mux.HandleFunc("GET /v1/stock", stockHandler.ListStockHandler)
	mux.HandleFunc("GET /v1/stock/alerts", stockHandler.AlertsHandler)
	mux.HandleFunc("GET /v1/stock/reasons", stockHandler.ReasonsHandler)
	mux.HandleFunc("GET /v1/stock/transactions", stockHandler.TransactionsHandler)
	mux.HandleFunc("GET /v1/stock/transactions/export", stockHandler.ExportHandler)
	mux.HandleFunc("GET /v1/stock/{productId}", stockHandler.GetStockHandler)
	mux.HandleFunc("POST /v1/stock/inbound", stockHandler.InboundHandler)
	mux.HandleFunc("POST /v1/stock/outbound", stockHandler.OutboundHandler)
	mux.HandleFunc("PUT /v1/stock/{productId}/threshold", stockHandler.ThresholdHandler)

	// --- Documentação ---
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return middleware.Chain(mux, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
