package stockservice_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/repository/productrepo"
	"stockledger/internal/repository/stockrepo"
	"stockledger/internal/service/stockservice"
)

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "입출고이력_20240301.csv", stockservice.ExportFileName(testNow))
}

func TestExportTransactionsCSV(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	_, err := svc.RecordInbound(ctx, domain.InboundRequest{ProductID: "P2", Quantity: 12, Note: "입고, 1차"})
	require.NoError(t, err)
	_, err = svc.RecordOutbound(ctx, domain.OutboundRequest{ProductID: "P1", Quantity: 3, Reason: "판매", Actor: "박지민"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportTransactionsCSV(ctx, &buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "o arquivo deve começar com BOM")

	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"거래번호", "일시", "구분", "상품ID", "상품명", "수량", "사유", "메모", "담당자"}, rows[0])
	// Mesmo timestamp: o registro inserido por último vem primeiro.
	assert.Equal(t, []string{"TXN002", "2024-03-01 10:00:00", "출고", "P1", p1.Name, "3", "판매", "", "박지민"}, rows[1])
	assert.Equal(t, []string{"TXN001", "2024-03-01 10:00:00", "입고", "P2", p2.Name, "12", "", "입고, 1차", "이지한"}, rows[2])
}

func TestExportTransactionsCSV_EmptyLog(t *testing.T) {
	svc, _ := newLedger(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportTransactionsCSV(context.Background(), &buf))

	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLowStockAlerts(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	// P1 10/30 baixo, P2 100/30 normal.
	summary, err := svc.LowStockAlerts(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "P1", summary.Items[0].ProductID)

	// P2 passa a baixo; P1 esgota e vai para o topo.
	_, err = svc.SetMinimumThreshold(ctx, domain.ThresholdUpdateRequest{ProductID: "P2", MinimumThreshold: 150})
	require.NoError(t, err)
	_, err = svc.RecordOutbound(ctx, domain.OutboundRequest{ProductID: "P1", Quantity: 10, Reason: "손상"})
	require.NoError(t, err)

	summary, err = svc.LowStockAlerts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "P1", summary.Items[0].ProductID)
	assert.Equal(t, domain.StockOutOfStock, summary.Items[0].Status)
}

func TestLowStockAlerts_UsesConfiguredLimit(t *testing.T) {
	catalog, err := productrepo.NewProductRepository([]domain.Product{p1, p2}, logger.NewNop())
	require.NoError(t, err)
	repo := stockrepo.NewStockRepository(nil, logger.NewNop())
	require.NoError(t, repo.Seed([]domain.StockRecord{
		{ProductID: "P1", CurrentQuantity: 0, MinimumThreshold: 30},
		{ProductID: "P2", CurrentQuantity: 5, MinimumThreshold: 30},
	}))

	svc := stockservice.NewService(catalog, repo, logger.NewNop(), stockservice.Settings{AlertLimit: 1})
	summary, err := svc.LowStockAlerts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Len(t, summary.Items, 1)
}
