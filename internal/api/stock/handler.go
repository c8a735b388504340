package stock

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stockledger/internal/api/response"
	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/pkg/middleware"
	"stockledger/internal/service/stockservice"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	RecordInbound(ctx context.Context, req domain.InboundRequest) (domain.MovementResult, error)
	RecordOutbound(ctx context.Context, req domain.OutboundRequest) (domain.MovementResult, error)
	SetMinimumThreshold(ctx context.Context, req domain.ThresholdUpdateRequest) (domain.StockView, error)
	GetStock(ctx context.Context, productID string) (domain.StockView, error)
	ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockView, error)
	LowStockAlerts(ctx context.Context, limit int) (domain.StockAlertSummary, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionRecord, error)
	ListProductTransactions(ctx context.Context, productID string, limit int) ([]domain.TransactionRecord, error)
	ExportTransactionsCSV(ctx context.Context, w io.Writer) error
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
	Now     func() time.Time // relógio usado no nome do arquivo exportado
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		Now:     time.Now,
	}
}

// inboundPayload aceita a data como "2006-01-02" ou RFC 3339.
type inboundPayload struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	OccurredAt string `json:"occurred_at"`
	Note       string `json:"note"`
}

// ListStockHandler lida com GET /v1/stock?q=&status=&sort=.
//
// @Summary  Lista o estoque filtrado e ordenado
// @Tags     stock
// @Produce  json
// @Param    q       query string false "palavra-chave (nome ou código)"
// @Param    status  query string false "all | low | out-of-stock"
// @Param    sort    query string false "name | stock | status"
// @Success  200 {array} domain.StockView
// @Failure  400 {object} domain.ErrorResponse
// @Router   /v1/stock [get]
func (h *Handler) ListStockHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.StockFilter{
		Keyword: q.Get("q"),
		Status:  domain.StockStatusFilter(q.Get("status")),
		Sort:    domain.StockSortKey(q.Get("sort")),
	}

	views, err := h.Service.ListStock(r.Context(), filter)
	response.Write(h.Logger, w, r, views, err, http.StatusOK)
}

// GetStockHandler lida com GET /v1/stock/{productId}.
func (h *Handler) GetStockHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetStock(r.Context(), r.PathValue("productId"))
	response.Write(h.Logger, w, r, view, err, http.StatusOK)
}

// AlertsHandler lida com GET /v1/stock/alerts?limit=.
func (h *Handler) AlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query(), "limit")
	if err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusOK)
		return
	}

	summary, err := h.Service.LowStockAlerts(r.Context(), limit)
	response.Write(h.Logger, w, r, summary, err, http.StatusOK)
}

// InboundHandler lida com POST /v1/stock/inbound.
//
// @Summary  Registra uma entrada de estoque
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    X-Actor header string false "operador"
// @Success  201 {object} domain.MovementResult
// @Failure  400 {object} domain.ErrorResponse
// @Router   /v1/stock/inbound [post]
func (h *Handler) InboundHandler(w http.ResponseWriter, r *http.Request) {
	var payload inboundPayload
	if err := response.DecodeJSON(r, &payload); err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusCreated)
		return
	}

	occurredAt, err := parseDate(payload.OccurredAt)
	if err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusCreated)
		return
	}

	actor, _ := middleware.GetActorFromContext(r.Context())
	result, err := h.Service.RecordInbound(r.Context(), domain.InboundRequest{
		ProductID:  payload.ProductID,
		Quantity:   payload.Quantity,
		OccurredAt: occurredAt,
		Note:       payload.Note,
		Actor:      actor,
	})
	response.Write(h.Logger, w, r, result, err, http.StatusCreated)
}

// OutboundHandler lida com POST /v1/stock/outbound.
//
// @Summary  Registra uma saída de estoque
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    X-Actor header string false "operador"
// @Success  201 {object} domain.MovementResult
// @Failure  400 {object} domain.ErrorResponse
// @Failure  409 {object} domain.ErrorResponse
// @Router   /v1/stock/outbound [post]
func (h *Handler) OutboundHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.OutboundRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusCreated)
		return
	}
	req.Actor, _ = middleware.GetActorFromContext(r.Context())

	result, err := h.Service.RecordOutbound(r.Context(), req)
	response.Write(h.Logger, w, r, result, err, http.StatusCreated)
}

// thresholdPayload usa ponteiro para distinguir "ausente" de zero.
type thresholdPayload struct {
	MinimumThreshold *int `json:"minimum_threshold"`
	ExpectedVersion  int  `json:"expected_version"`
}

// ThresholdHandler lida com PUT /v1/stock/{productId}/threshold.
// minimum_threshold é obrigatório; zero só vale quando enviado explicitamente.
func (h *Handler) ThresholdHandler(w http.ResponseWriter, r *http.Request) {
	var payload thresholdPayload
	if err := response.DecodeJSON(r, &payload); err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusOK)
		return
	}
	if payload.MinimumThreshold == nil {
		response.Write(h.Logger, w, r, nil, apperror.NewValidationError("O campo minimum_threshold é obrigatório."), http.StatusOK)
		return
	}

	view, err := h.Service.SetMinimumThreshold(r.Context(), domain.ThresholdUpdateRequest{
		ProductID:        r.PathValue("productId"),
		MinimumThreshold: *payload.MinimumThreshold,
		ExpectedVersion:  payload.ExpectedVersion,
	})
	response.Write(h.Logger, w, r, view, err, http.StatusOK)
}

// TransactionsHandler lida com GET /v1/stock/transactions?limit=&product_id=.
func (h *Handler) TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit")
	if err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusOK)
		return
	}

	var txns []domain.TransactionRecord
	if productID := q.Get("product_id"); productID != "" {
		txns, err = h.Service.ListProductTransactions(r.Context(), productID, limit)
	} else {
		txns, err = h.Service.ListRecentTransactions(r.Context(), limit)
	}
	response.Write(h.Logger, w, r, txns, err, http.StatusOK)
}

// ExportHandler lida com GET /v1/stock/transactions/export e devolve o histórico em CSV.
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Service.ExportTransactionsCSV(r.Context(), &buf); err != nil {
		response.Write(h.Logger, w, r, nil, err, http.StatusOK)
		return
	}

	filename := stockservice.ExportFileName(h.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar exportação.", err)
	}
}

// ReasonsHandler lida com GET /v1/stock/reasons.
func (h *Handler) ReasonsHandler(w http.ResponseWriter, r *http.Request) {
	response.Write(h.Logger, w, r, domain.OutboundReasons, nil, http.StatusOK)
}

func intParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.NewValidationError("Parâmetro " + name + " deve ser um inteiro não negativo.")
	}
	return n, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, apperror.NewValidationError("Data de entrada inválida. Use AAAA-MM-DD.")
}
