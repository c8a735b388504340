package stockservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
)

// StockRepository define o contrato que o Serviço de Estoque espera do ledger.
type StockRepository interface {
	GetStockRecord(ctx context.Context, productID string) (domain.StockRecord, error)
	ListStockRecords(ctx context.Context) ([]domain.StockRecord, error)
	ApplyMovement(ctx context.Context, m domain.StockMovement) (domain.StockRecord, domain.TransactionRecord, error)
	UpdateThreshold(ctx context.Context, productID string, threshold, expectedVersion int) (domain.StockRecord, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionRecord, error)
	ListProductTransactions(ctx context.Context, productID string, limit int) ([]domain.TransactionRecord, error)
}

// ProductCatalog define o contrato de leitura do catálogo de produtos.
type ProductCatalog interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// Settings são os parâmetros do serviço vindos da configuração.
type Settings struct {
	Locale       language.Tag // idioma da ordenação por nome
	DefaultActor string
	RecentLimit  int // tamanho padrão do histórico recente
	AlertLimit   int // itens exibidos no painel de alertas
}

// Service aplica as regras do ledger de estoque sobre o repositório.
type Service struct {
	catalog  ProductCatalog
	repo     StockRepository
	logger   logger.Logger
	settings Settings
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(catalog ProductCatalog, repo StockRepository, logger logger.Logger, settings Settings) *Service {
	if settings.Locale == language.Und {
		settings.Locale = language.Korean
	}
	if settings.RecentLimit <= 0 {
		settings.RecentLimit = 15
	}
	if settings.AlertLimit <= 0 {
		settings.AlertLimit = 3
	}
	return &Service{catalog: catalog, repo: repo, logger: logger, settings: settings}
}

// RecordInbound registra uma entrada (reposição) de estoque.
func (s *Service) RecordInbound(ctx context.Context, req domain.InboundRequest) (domain.MovementResult, error) {
	s.logger.Debug("Iniciando entrada de estoque no serviço.", map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})

	if req.Quantity <= 0 {
		s.logger.Warn("Entrada rejeitada: quantidade inválida.", map[string]interface{}{"product_id": req.ProductID, "quantity": req.Quantity})
		return domain.MovementResult{}, apperror.NewValidationError("A quantidade de entrada deve ser maior que zero.")
	}

	product, err := s.resolveProduct(ctx, req.ProductID)
	if err != nil {
		return domain.MovementResult{}, err
	}

	rec, txn, err := s.repo.ApplyMovement(ctx, domain.StockMovement{
		Direction:   domain.Inbound,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Note:        strings.TrimSpace(req.Note),
		Actor:       s.actor(req.Actor),
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		return domain.MovementResult{}, s.translateRepoError("entrada", err)
	}

	s.logger.Info("Entrada de estoque registrada.", map[string]interface{}{
		"product_id":     product.ID,
		"transaction_id": txn.ID,
		"quantity":       txn.Quantity,
		"new_quantity":   rec.CurrentQuantity,
	})
	return domain.MovementResult{Stock: domain.NewStockView(product, rec), Transaction: txn}, nil
}

// RecordOutbound registra uma saída de estoque. O motivo é obrigatório.
func (s *Service) RecordOutbound(ctx context.Context, req domain.OutboundRequest) (domain.MovementResult, error) {
	s.logger.Debug("Iniciando saída de estoque no serviço.", map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
		"reason":     req.Reason,
	})

	if req.Quantity <= 0 {
		s.logger.Warn("Saída rejeitada: quantidade inválida.", map[string]interface{}{"product_id": req.ProductID, "quantity": req.Quantity})
		return domain.MovementResult{}, apperror.NewValidationError("A quantidade de saída deve ser maior que zero.")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("Saída rejeitada: motivo ausente.", map[string]interface{}{"product_id": req.ProductID})
		return domain.MovementResult{}, apperror.NewValidationError("O motivo da saída é obrigatório.")
	}

	product, err := s.resolveProduct(ctx, req.ProductID)
	if err != nil {
		return domain.MovementResult{}, err
	}

	rec, txn, err := s.repo.ApplyMovement(ctx, domain.StockMovement{
		Direction:   domain.Outbound,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Reason:      reason,
		Note:        strings.TrimSpace(req.Note),
		Actor:       s.actor(req.Actor),
	})
	if err != nil {
		return domain.MovementResult{}, s.translateRepoError("saída", err)
	}

	s.logger.Info("Saída de estoque registrada.", map[string]interface{}{
		"product_id":     product.ID,
		"transaction_id": txn.ID,
		"quantity":       txn.Quantity,
		"new_quantity":   rec.CurrentQuantity,
	})
	return domain.MovementResult{Stock: domain.NewStockView(product, rec), Transaction: txn}, nil
}

// SetMinimumThreshold altera o limite mínimo e recalcula o estado com a quantidade atual.
// Não gera registro no histórico.
func (s *Service) SetMinimumThreshold(ctx context.Context, req domain.ThresholdUpdateRequest) (domain.StockView, error) {
	if req.MinimumThreshold < 0 {
		s.logger.Warn("Limite mínimo negativo rejeitado.", map[string]interface{}{"product_id": req.ProductID, "threshold": req.MinimumThreshold})
		return domain.StockView{}, apperror.NewValidationError("O limite mínimo não pode ser negativo.")
	}

	product, err := s.resolveProduct(ctx, req.ProductID)
	if err != nil {
		return domain.StockView{}, err
	}

	rec, err := s.repo.UpdateThreshold(ctx, product.ID, req.MinimumThreshold, req.ExpectedVersion)
	if err != nil {
		return domain.StockView{}, s.translateRepoError("limite mínimo", err)
	}

	view := domain.NewStockView(product, rec)
	s.logger.Info("Limite mínimo atualizado.", map[string]interface{}{
		"product_id": product.ID,
		"threshold":  rec.MinimumThreshold,
		"status":     view.Status,
	})
	return view, nil
}

// GetStock devolve a posição atual de um produto.
func (s *Service) GetStock(ctx context.Context, productID string) (domain.StockView, error) {
	product, err := s.resolveProduct(ctx, productID)
	if err != nil {
		return domain.StockView{}, err
	}

	rec, err := s.repo.GetStockRecord(ctx, product.ID)
	if err != nil {
		return domain.StockView{}, s.translateRepoError("consulta", err)
	}
	return domain.NewStockView(product, rec), nil
}

// ListStock devolve a visão filtrada e ordenada do ledger. Não altera estado.
func (s *Service) ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockView, error) {
	normalized, err := NormalizeFilter(filter)
	if err != nil {
		s.logger.Warn("Filtro de estoque inválido.", map[string]interface{}{"status": filter.Status, "sort": filter.Sort})
		return nil, err
	}

	views, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FilterStock(views, normalized, s.settings.Locale), nil
}

// ListRecentTransactions devolve o histórico mais recente de todos os produtos.
// limit <= 0 usa o tamanho padrão configurado.
func (s *Service) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionRecord, error) {
	if limit <= 0 {
		limit = s.settings.RecentLimit
	}
	txns, err := s.repo.ListRecentTransactions(ctx, limit)
	if err != nil {
		s.logger.Error("Falha ao listar histórico de movimentações.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar histórico.", err)
	}
	return txns, nil
}

// ListProductTransactions devolve o histórico mais recente de um produto.
func (s *Service) ListProductTransactions(ctx context.Context, productID string, limit int) ([]domain.TransactionRecord, error) {
	product, err := s.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.settings.RecentLimit
	}
	txns, err := s.repo.ListProductTransactions(ctx, product.ID, limit)
	if err != nil {
		s.logger.Error("Falha ao listar histórico do produto.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar histórico.", err)
	}
	return txns, nil
}

// snapshot junta catálogo e ledger na ordem do catálogo.
func (s *Service) snapshot(ctx context.Context) ([]domain.StockView, error) {
	products, err := s.catalog.FindAll(ctx, domain.ProductFilter{})
	if err != nil {
		s.logger.Error("Falha ao ler o catálogo.", err)
		return nil, apperror.NewInternalError("Falha interna ao ler o catálogo.", err)
	}
	records, err := s.repo.ListStockRecords(ctx)
	if err != nil {
		s.logger.Error("Falha ao ler o ledger de estoque.", err)
		return nil, apperror.NewInternalError("Falha interna ao ler o estoque.", err)
	}

	byProduct := make(map[string]domain.StockRecord, len(records))
	for _, r := range records {
		byProduct[r.ProductID] = r
	}

	views := make([]domain.StockView, 0, len(records))
	for _, p := range products {
		if rec, ok := byProduct[p.ID]; ok {
			views = append(views, domain.NewStockView(p, rec))
		}
	}
	return views, nil
}

// resolveProduct valida a referência ao produto. Produto desconhecido é erro de validação.
func (s *Service) resolveProduct(ctx context.Context, productID string) (domain.Product, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return domain.Product{}, apperror.NewValidationError("O produto é obrigatório.")
	}

	product, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Warn("Referência a produto desconhecido.", map[string]interface{}{"product_id": id})
			return domain.Product{}, apperror.NewValidationError(fmt.Sprintf("Produto desconhecido: %s.", id))
		}
		s.logger.Error("Falha ao buscar produto no catálogo.", err)
		return domain.Product{}, apperror.NewInternalError("Falha interna ao buscar produto.", err)
	}
	return product, nil
}

func (s *Service) actor(actor string) string {
	if a := strings.TrimSpace(actor); a != "" {
		return a
	}
	return s.settings.DefaultActor
}

// translateRepoError traduz os erros do repositório para erros de negócio.
func (s *Service) translateRepoError(op string, err error) error {
	var (
		insufficient *apperror.InsufficientStockError
		conflict     *apperror.ConflictError
		validation   *apperror.ValidationError
		notFound     *apperror.NotFoundError
	)
	switch {
	case errors.As(err, &insufficient):
		return insufficient
	case errors.As(err, &conflict):
		return conflict
	case errors.As(err, &validation):
		return validation
	case errors.As(err, &notFound):
		// Produto existe no catálogo mas não tem registro no ledger.
		return apperror.NewValidationError(fmt.Sprintf("Produto sem registro de estoque: %s", notFound.Msg))
	default:
		s.logger.Error(fmt.Sprintf("Falha ao processar %s no repositório.", op), err)
		return apperror.NewInternalError(fmt.Sprintf("Falha interna ao processar %s de estoque.", op), err)
	}
}
