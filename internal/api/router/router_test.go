package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/api/product"
	"stockledger/internal/api/router"
	"stockledger/internal/api/stock"
	"stockledger/internal/domain"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/pkg/middleware"
	"stockledger/internal/repository/productrepo"
	"stockledger/internal/repository/stockrepo"
	"stockledger/internal/service/productservice"
	"stockledger/internal/service/stockservice"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// newServer monta a aplicação completa sobre os dados iniciais do catálogo.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	clock := func() time.Time { return fixedNow }

	products := productrepo.SeedProducts()
	catalog, err := productrepo.NewProductRepository(products, log)
	require.NoError(t, err)

	ledger := stockrepo.NewStockRepository(clock, log)
	require.NoError(t, ledger.Seed(productrepo.SeedStock(products, 30, fixedNow.AddDate(0, 0, -7))))

	stockSvc := stockservice.NewService(catalog, ledger, log, stockservice.Settings{DefaultActor: "이지한"})
	stockHandler := stock.NewHandler(stockSvc, log)
	stockHandler.Now = clock

	h := router.NewRouter(
		product.NewHandler(productservice.NewService(catalog, log), log),
		stockHandler,
		middleware.RequestLogger(log),
		middleware.Actor("이지한"),
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestPing(t *testing.T) {
	srv := newServer(t)
	resp := do(t, srv, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestOutboundThenInbound(t *testing.T) {
	srv := newServer(t)

	// Produto 3 começa com 18 unidades.
	resp := do(t, srv, http.MethodPost, "/v1/stock/outbound", `{"product_id":"3","quantity":18,"reason":"판매"}`, map[string]string{"X-Actor": "박지민"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out domain.MovementResult
	decode(t, resp, &out)
	assert.Equal(t, 0, out.Stock.CurrentQuantity)
	assert.Equal(t, domain.StockOutOfStock, out.Stock.Status)
	assert.Equal(t, "박지민", out.Transaction.Actor)
	assert.Equal(t, "TXN001", out.Transaction.ID)

	resp = do(t, srv, http.MethodPost, "/v1/stock/inbound", `{"product_id":"3","quantity":40,"occurred_at":"2024-03-01T12:00:00Z"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var in domain.MovementResult
	decode(t, resp, &in)
	assert.Equal(t, 40, in.Stock.CurrentQuantity)
	assert.Equal(t, domain.StockNormal, in.Stock.Status)
	assert.Equal(t, "이지한", in.Transaction.Actor)

	resp = do(t, srv, http.MethodGet, "/v1/stock/transactions", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txns []domain.TransactionRecord
	decode(t, resp, &txns)
	require.Len(t, txns, 2)
	assert.Equal(t, "TXN002", txns[0].ID)
}

func TestOutbound_InsufficientStock(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/v1/stock/outbound", `{"product_id":"8","quantity":10,"reason":"판매"}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body domain.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Category)

	resp = do(t, srv, http.MethodGet, "/v1/stock/8", "", nil)
	var view domain.StockView
	decode(t, resp, &view)
	assert.Equal(t, 9, view.CurrentQuantity)
}

func TestOutbound_ValidationErrors(t *testing.T) {
	srv := newServer(t)

	cases := map[string]string{
		"missing reason":  `{"product_id":"1","quantity":1}`,
		"zero quantity":   `{"product_id":"1","quantity":0,"reason":"판매"}`,
		"unknown product": `{"product_id":"999","quantity":1,"reason":"판매"}`,
		"malformed json":  `{"product_id":`,
		"unknown field":   `{"product_id":"1","quantity":1,"reason":"판매","price":3}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := do(t, srv, http.MethodPost, "/v1/stock/outbound", body, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestThreshold(t *testing.T) {
	srv := newServer(t)

	// Produto 5: 75 unidades, limite 30 -> normal; limite 80 -> baixo.
	resp := do(t, srv, http.MethodPut, "/v1/stock/5/threshold", `{"minimum_threshold":80}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view domain.StockView
	decode(t, resp, &view)
	assert.Equal(t, domain.StockLow, view.Status)

	resp = do(t, srv, http.MethodPut, "/v1/stock/5/threshold", `{"minimum_threshold":10,"expected_version":1}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/v1/stock/transactions", "", nil)
	var txns []domain.TransactionRecord
	decode(t, resp, &txns)
	assert.Empty(t, txns)
}

func TestThreshold_MissingValueIsRejected(t *testing.T) {
	srv := newServer(t)

	for _, body := range []string{`{}`, `{"expected_version":1}`, `{"minimum_treshold":5}`} {
		resp := do(t, srv, http.MethodPut, "/v1/stock/5/threshold", body, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}

	resp := do(t, srv, http.MethodGet, "/v1/stock/5", "", nil)
	var view domain.StockView
	decode(t, resp, &view)
	assert.Equal(t, 30, view.MinimumThreshold)
	assert.Equal(t, 1, view.Version)

	// Zero explícito é aceito.
	resp = do(t, srv, http.MethodPut, "/v1/stock/5/threshold", `{"minimum_threshold":0}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	assert.Equal(t, 0, view.MinimumThreshold)
}

func TestListStock_FilterAndSort(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/stock?status=low&sort=stock", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var views []domain.StockView
	decode(t, resp, &views)
	require.Len(t, views, 3)
	assert.Equal(t, []int{30, 18, 9}, []int{views[0].CurrentQuantity, views[1].CurrentQuantity, views[2].CurrentQuantity})

	resp = do(t, srv, http.MethodGet, "/v1/stock?q=cream", "", nil)
	decode(t, resp, &views)
	assert.Len(t, views, 2)

	resp = do(t, srv, http.MethodGet, "/v1/stock?sort=price", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAlerts(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/stock/alerts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary domain.StockAlertSummary
	decode(t, resp, &summary)
	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Items, 3)
	assert.Equal(t, "4", summary.Items[0].ProductID)
	assert.Equal(t, "8", summary.Items[1].ProductID)

	resp = do(t, srv, http.MethodGet, "/v1/stock/alerts?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	srv := newServer(t)
	do(t, srv, http.MethodPost, "/v1/stock/inbound", `{"product_id":"1","quantity":5}`, nil)

	resp := do(t, srv, http.MethodGet, "/v1/stock/transactions/export", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "20240301.csv")
}

func TestProducts(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/products/6", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p domain.Product
	decode(t, resp, &p)
	assert.Equal(t, "PRD006", p.Code)

	resp = do(t, srv, http.MethodGet, "/v1/products/404", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/v1/products?category="+url.QueryEscape("크림"), "", nil)
	var list []domain.Product
	decode(t, resp, &list)
	assert.Len(t, list, 2)
}

func TestReasons(t *testing.T) {
	srv := newServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/stock/reasons", "", nil)
	var reasons []string
	decode(t, resp, &reasons)
	assert.Equal(t, domain.OutboundReasons, reasons)
}
