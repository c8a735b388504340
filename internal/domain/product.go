package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus indica se o produto está ativo no catálogo.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// Product representa o item do catálogo (dado de referência, imutável dentro do ledger).
type Product struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"` // Código de exibição (e.g., PRD001)
	Name      string          `json:"name"`
	NameEn    string          `json:"name_en"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    ProductStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsActive informa se o produto está ativo.
func (p Product) IsActive() bool {
	return p.Status == ProductActive
}

// ProductFilter define os parâmetros de busca no catálogo.
type ProductFilter struct {
	Keyword    string
	Category   string
	ActiveOnly bool
}
