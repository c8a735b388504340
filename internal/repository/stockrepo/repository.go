package stockrepo

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"stockledger/internal/domain"
	"stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
)

// Repository é o ledger em memória: posições de estoque por produto + histórico de movimentações.
// Cada mutação roda sob um único lock que cobre o registro e o append no histórico,
// então uma saída rejeitada nunca deixa rastro e toda movimentação gera exatamente um registro.
type Repository struct {
	mu      sync.Mutex
	records map[string]domain.StockRecord
	order   []string // ordem de cadastro, para snapshots determinísticos
	log     *TransactionLog
	now     func() time.Time
	logger  logger.Logger
}

// NewStockRepository cria e retorna um ledger vazio.
// now é o relógio usado para carimbar saídas e entradas sem data; nil usa time.Now.
func NewStockRepository(now func() time.Time, logger logger.Logger) *Repository {
	if now == nil {
		now = time.Now
	}
	return &Repository{
		records: make(map[string]domain.StockRecord),
		log:     NewTransactionLog(),
		now:     now,
		logger:  logger,
	}
}

// Seed cadastra as posições iniciais (onboarding de produto fica fora do ledger).
func (r *Repository) Seed(records []domain.StockRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		if rec.ProductID == "" {
			return errors.NewValidationError("Registro de estoque sem produto.")
		}
		if rec.CurrentQuantity < 0 || rec.MinimumThreshold < 0 {
			return errors.NewValidationError(fmt.Sprintf("Registro de estoque do produto %s com valores negativos.", rec.ProductID))
		}
		if _, exists := r.records[rec.ProductID]; exists {
			return errors.NewConflictError(fmt.Sprintf("Produto %s já possui registro de estoque.", rec.ProductID))
		}
		if rec.Version == 0 {
			rec.Version = 1
		}
		r.records[rec.ProductID] = rec
		r.order = append(r.order, rec.ProductID)
	}

	r.logger.Info("Registros de estoque carregados.", map[string]interface{}{"count": len(records)})
	return nil
}

// GetStockRecord busca a posição de estoque de um produto.
func (r *Repository) GetStockRecord(ctx context.Context, productID string) (domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, errors.NewInternalError("Operação cancelada.", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[productID]
	if !ok {
		r.logger.Info("Registro de estoque não encontrado.", map[string]interface{}{"product_id": productID})
		return domain.StockRecord{}, errors.NewNotFoundError(fmt.Sprintf("Estoque do produto %s não encontrado.", productID))
	}
	return rec, nil
}

// ListStockRecords devolve um snapshot de todas as posições, na ordem de cadastro.
func (r *Repository) ListStockRecords(ctx context.Context) ([]domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternalError("Operação cancelada.", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.StockRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

// ApplyMovement aplica uma entrada ou saída e registra a transação correspondente.
func (r *Repository) ApplyMovement(ctx context.Context, m domain.StockMovement) (domain.StockRecord, domain.TransactionRecord, error) {
	r.logger.Debug("Iniciando movimentação de estoque no repositório.", map[string]interface{}{
		"product_id": m.ProductID,
		"direction":  m.Direction,
		"quantity":   m.Quantity,
	})

	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewInternalError("Operação cancelada.", err)
	}
	if m.Quantity <= 0 {
		return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewValidationError("A quantidade deve ser maior que zero.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[m.ProductID]
	if !ok {
		return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewNotFoundError(fmt.Sprintf("Estoque do produto %s não encontrado.", m.ProductID))
	}

	// 1. Calcular a nova posição sem tocar no registro armazenado
	updated := current
	occurredAt := m.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = r.now()
	}

	switch m.Direction {
	case domain.Inbound:
		if m.Quantity > math.MaxInt-current.CurrentQuantity {
			r.logger.Warn("Entrada rejeitada: quantidade excede o limite do estoque.", map[string]interface{}{
				"product_id": m.ProductID,
				"available":  current.CurrentQuantity,
				"requested":  m.Quantity,
			})
			return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewValidationError(fmt.Sprintf("A entrada de %d unidades excede o estoque máximo do produto %s.", m.Quantity, m.ProductID))
		}
		updated.CurrentQuantity += m.Quantity
		updated.LastRestockedAt = occurredAt
		m.Reason = ""
	case domain.Outbound:
		if m.Quantity > current.CurrentQuantity {
			r.logger.Warn("Saída maior que o estoque atual rejeitada.", map[string]interface{}{
				"product_id": m.ProductID,
				"available":  current.CurrentQuantity,
				"requested":  m.Quantity,
			})
			return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewInsufficientStockError(m.ProductID, m.Quantity, current.CurrentQuantity)
		}
		updated.CurrentQuantity -= m.Quantity
	default:
		return domain.StockRecord{}, domain.TransactionRecord{}, errors.NewValidationError(fmt.Sprintf("Direção de movimentação desconhecida: %q.", m.Direction))
	}
	updated.Version++

	// 2. "Commit": grava o registro e anexa exatamente uma transação
	r.records[m.ProductID] = updated
	txn := r.log.Append(domain.TransactionRecord{
		Timestamp:   occurredAt,
		Direction:   m.Direction,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		Note:        m.Note,
		Actor:       m.Actor,
	})

	r.logger.Info("Movimentação de estoque registrada.", map[string]interface{}{
		"product_id":     m.ProductID,
		"transaction_id": txn.ID,
		"new_quantity":   updated.CurrentQuantity,
		"new_version":    updated.Version,
	})
	return updated, txn, nil
}

// UpdateThreshold altera o limite mínimo. Não gera transação.
// expectedVersion diferente de zero precisa coincidir com a versão atual (OCC).
func (r *Repository) UpdateThreshold(ctx context.Context, productID string, threshold, expectedVersion int) (domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, errors.NewInternalError("Operação cancelada.", err)
	}
	if threshold < 0 {
		return domain.StockRecord{}, errors.NewValidationError("O limite mínimo não pode ser negativo.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[productID]
	if !ok {
		return domain.StockRecord{}, errors.NewNotFoundError(fmt.Sprintf("Estoque do produto %s não encontrado.", productID))
	}

	if expectedVersion != 0 && expectedVersion != current.Version {
		r.logger.Warn("Falha no controle de concorrência otimista (OCC). Versão do registro desatualizada.", map[string]interface{}{
			"product_id":       productID,
			"expected_version": expectedVersion,
			"current_version":  current.Version,
		})
		return domain.StockRecord{}, errors.NewConflictError("O estoque foi modificado por outra operação. Tente novamente.")
	}

	current.MinimumThreshold = threshold
	current.Version++
	r.records[productID] = current

	r.logger.Info("Limite mínimo atualizado.", map[string]interface{}{
		"product_id":  productID,
		"threshold":   threshold,
		"new_version": current.Version,
	})
	return current, nil
}

// ListRecentTransactions devolve as transações mais recentes de todos os produtos.
func (r *Repository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternalError("Operação cancelada.", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.ListRecent(limit), nil
}

// ListProductTransactions devolve as transações mais recentes de um produto.
func (r *Repository) ListProductTransactions(ctx context.Context, productID string, limit int) ([]domain.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewInternalError("Operação cancelada.", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.ListByProduct(productID, limit), nil
}
