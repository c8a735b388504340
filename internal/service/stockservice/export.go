package stockservice

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	apperror "stockledger/internal/errors"
)

// utf8BOM faz o Excel abrir o arquivo como UTF-8.
const utf8BOM = "\uFEFF"

var exportHeader = []string{"거래번호", "일시", "구분", "상품ID", "상품명", "수량", "사유", "메모", "담당자"}

// ExportFileName devolve o nome do arquivo de exportação para a data informada.
func ExportFileName(at time.Time) string {
	return "입출고이력_" + at.Format("20060102") + ".csv"
}

// ExportTransactionsCSV escreve todo o histórico (mais recente primeiro) em CSV com BOM.
func (s *Service) ExportTransactionsCSV(ctx context.Context, w io.Writer) error {
	txns, err := s.repo.ListRecentTransactions(ctx, 0)
	if err != nil {
		s.logger.Error("Falha ao ler histórico para exportação.", err)
		return apperror.NewInternalError("Falha interna ao exportar histórico.", err)
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return apperror.NewInternalError("Falha ao escrever exportação.", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return apperror.NewInternalError("Falha ao escrever exportação.", err)
	}
	for _, t := range txns {
		row := []string{
			t.ID,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Direction.Label(),
			t.ProductID,
			t.ProductName,
			strconv.Itoa(t.Quantity),
			t.Reason,
			t.Note,
			t.Actor,
		}
		if err := cw.Write(row); err != nil {
			return apperror.NewInternalError("Falha ao escrever exportação.", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperror.NewInternalError("Falha ao escrever exportação.", err)
	}

	s.logger.Info("Histórico exportado.", map[string]interface{}{"rows": len(txns)})
	return nil
}
