package stockservice

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
)

// NormalizeFilter aplica os padrões (status "all", ordenação "name") e rejeita valores desconhecidos.
func NormalizeFilter(f domain.StockFilter) (domain.StockFilter, error) {
	f.Keyword = strings.TrimSpace(f.Keyword)

	switch f.Status {
	case "":
		f.Status = domain.FilterAll
	case domain.FilterAll, domain.FilterLow, domain.FilterOutOfStock:
	default:
		return domain.StockFilter{}, apperror.NewValidationError(fmt.Sprintf("Filtro de estado inválido: %q.", f.Status))
	}

	switch f.Sort {
	case "":
		f.Sort = domain.SortByName
	case domain.SortByName, domain.SortByQuantity, domain.SortByStatus:
	default:
		return domain.StockFilter{}, apperror.NewValidationError(fmt.Sprintf("Ordenação inválida: %q.", f.Sort))
	}
	return f, nil
}

// FilterStock filtra e ordena um snapshot do ledger.
// Função pura: não altera views e, para as mesmas entradas, devolve sempre a mesma sequência.
func FilterStock(views []domain.StockView, filter domain.StockFilter, locale language.Tag) []domain.StockView {
	fold := cases.Fold()
	keyword := fold.String(strings.TrimSpace(filter.Keyword))

	out := make([]domain.StockView, 0, len(views))
	for _, v := range views {
		if !matchesStatus(v.Status, filter.Status) {
			continue
		}
		if keyword != "" &&
			!strings.Contains(fold.String(v.Name), keyword) &&
			!strings.Contains(fold.String(v.NameEn), keyword) &&
			!strings.Contains(fold.String(v.Code), keyword) {
			continue
		}
		out = append(out, v)
	}

	switch filter.Sort {
	case domain.SortByName, "":
		col := collate.New(locale)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case domain.SortByQuantity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentQuantity > out[j].CurrentQuantity
		})
	case domain.SortByStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	}
	return out
}

func matchesStatus(s domain.StockStatus, f domain.StockStatusFilter) bool {
	switch f {
	case domain.FilterLow:
		return s == domain.StockLow
	case domain.FilterOutOfStock:
		return s == domain.StockOutOfStock
	default:
		return true
	}
}
