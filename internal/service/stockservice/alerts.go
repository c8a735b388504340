package stockservice

import (
	"context"
	"sort"

	"stockledger/internal/domain"
)

// LowStockAlerts devolve os produtos em falta ou abaixo do limite.
// Esgotados primeiro, depois menor quantidade; Total conta todos, Items é truncado em limit.
func (s *Service) LowStockAlerts(ctx context.Context, limit int) (domain.StockAlertSummary, error) {
	if limit <= 0 {
		limit = s.settings.AlertLimit
	}

	views, err := s.snapshot(ctx)
	if err != nil {
		return domain.StockAlertSummary{}, err
	}

	alerts := make([]domain.StockView, 0)
	for _, v := range views {
		if v.Status != domain.StockNormal {
			alerts = append(alerts, v)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		oi, oj := alerts[i].Status == domain.StockOutOfStock, alerts[j].Status == domain.StockOutOfStock
		if oi != oj {
			return oi
		}
		return alerts[i].CurrentQuantity < alerts[j].CurrentQuantity
	})

	summary := domain.StockAlertSummary{Total: len(alerts), Items: alerts}
	if len(alerts) > limit {
		summary.Items = alerts[:limit]
	}
	return summary, nil
}
