package stockrepo

import (
	"fmt"
	"sort"

	"stockledger/internal/domain"
)

// TransactionLog é o histórico append-only de movimentações.
// Não é seguro para uso concorrente por si só: o Repository serializa o acesso.
type TransactionLog struct {
	entries []logEntry
}

type logEntry struct {
	seq    int
	record domain.TransactionRecord
}

// NewTransactionLog cria um histórico vazio.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append atribui o próximo ID (TXN001, TXN002, ...) e insere o registro.
// Entradas existentes nunca são alteradas ou removidas.
func (l *TransactionLog) Append(rec domain.TransactionRecord) domain.TransactionRecord {
	seq := len(l.entries) + 1
	rec.ID = fmt.Sprintf("TXN%03d", seq)
	l.entries = append(l.entries, logEntry{seq: seq, record: rec})
	return rec
}

// Len devolve o número de registros.
func (l *TransactionLog) Len() int {
	return len(l.entries)
}

// ListRecent devolve os limit registros mais recentes de todos os produtos.
// limit <= 0 devolve todos.
func (l *TransactionLog) ListRecent(limit int) []domain.TransactionRecord {
	return l.list(limit, func(domain.TransactionRecord) bool { return true })
}

// ListByProduct devolve os limit registros mais recentes de um produto.
func (l *TransactionLog) ListByProduct(productID string, limit int) []domain.TransactionRecord {
	return l.list(limit, func(r domain.TransactionRecord) bool { return r.ProductID == productID })
}

// list ordena por timestamp decrescente; empates vão para a inserção mais recente.
func (l *TransactionLog) list(limit int, keep func(domain.TransactionRecord) bool) []domain.TransactionRecord {
	selected := make([]logEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if keep(e.record) {
			selected = append(selected, e)
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		ti, tj := selected[i].record.Timestamp, selected[j].record.Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return selected[i].seq > selected[j].seq
	})

	if limit > 0 && limit < len(selected) {
		selected = selected[:limit]
	}

	out := make([]domain.TransactionRecord, len(selected))
	for i, e := range selected {
		out[i] = e.record
	}
	return out
}
