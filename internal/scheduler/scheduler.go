package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"stockledger/internal/domain"
	"stockledger/internal/pkg/logger"
)

// AlertSource fornece o resumo de alertas de estoque.
type AlertSource interface {
	LowStockAlerts(ctx context.Context, limit int) (domain.StockAlertSummary, error)
}

// Scheduler executa a verificação periódica de estoque baixo.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	alerts AlertSource
	limit  int
	logger logger.Logger
}

// NewScheduler cria o agendador. spec usa o formato cron padrão de 5 campos.
func NewScheduler(spec string, alerts AlertSource, limit int, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		spec:   spec,
		alerts: alerts,
		limit:  limit,
		logger: log,
	}
}

// Start registra a verificação e inicia o cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.CheckLowStock); err != nil {
		return fmt.Errorf("expressão cron inválida %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("Agendador de alertas iniciado.", map[string]interface{}{"spec": s.spec})
	return nil
}

// Stop para o cron e aguarda a execução em andamento.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Agendador de alertas encerrado.", nil)
}

// CheckLowStock registra no log os produtos em falta ou abaixo do limite.
func (s *Scheduler) CheckLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := s.alerts.LowStockAlerts(ctx, s.limit)
	if err != nil {
		s.logger.Error("Falha ao verificar estoque baixo.", err)
		return
	}
	if summary.Total == 0 {
		s.logger.Debug("Nenhum produto com estoque baixo.", nil)
		return
	}

	for _, item := range summary.Items {
		s.logger.Warn("Alerta de estoque.", map[string]interface{}{
			"product_id": item.ProductID,
			"code":       item.Code,
			"quantity":   item.CurrentQuantity,
			"threshold":  item.MinimumThreshold,
			"status":     item.Status,
		})
	}
	s.logger.Info("Verificação de estoque concluída.", map[string]interface{}{"total": summary.Total})
}
