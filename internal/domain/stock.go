package domain

import "time"

// StockStatus é o estado derivado de um registro de estoque.
type StockStatus string

const (
	StockNormal     StockStatus = "normal"
	StockLow        StockStatus = "low"
	StockOutOfStock StockStatus = "out-of-stock"
)

// DeriveStockStatus calcula o estado a partir da quantidade e do limite mínimo.
// Função pura: nunca é persistida, sempre recalculada.
func DeriveStockStatus(quantity, threshold int) StockStatus {
	switch {
	case quantity == 0:
		return StockOutOfStock
	case quantity <= threshold:
		return StockLow
	default:
		return StockNormal
	}
}

// StockRecord é a posição de estoque de um produto (1:1 com Product).
// Version é incrementada a cada mutação para controle de concorrência otimista.
type StockRecord struct {
	ProductID        string    `json:"product_id"`
	CurrentQuantity  int       `json:"current_quantity"`
	MinimumThreshold int       `json:"minimum_threshold"`
	LastRestockedAt  time.Time `json:"last_restocked_at"`
	Version          int       `json:"version"`
}

// Status deriva o estado atual do registro.
func (r StockRecord) Status() StockStatus {
	return DeriveStockStatus(r.CurrentQuantity, r.MinimumThreshold)
}

// StockView é a linha de exibição: produto + posição de estoque + estado derivado.
type StockView struct {
	ProductID        string      `json:"product_id"`
	Code             string      `json:"code"`
	Name             string      `json:"name"`
	NameEn           string      `json:"name_en"`
	Category         string      `json:"category"`
	CurrentQuantity  int         `json:"current_quantity"`
	MinimumThreshold int         `json:"minimum_threshold"`
	Status           StockStatus `json:"status"`
	LastRestockedAt  time.Time   `json:"last_restocked_at"`
	Version          int         `json:"version"`
}

// NewStockView monta a linha de exibição a partir do produto e do registro.
func NewStockView(p Product, r StockRecord) StockView {
	return StockView{
		ProductID:        p.ID,
		Code:             p.Code,
		Name:             p.Name,
		NameEn:           p.NameEn,
		Category:         p.Category,
		CurrentQuantity:  r.CurrentQuantity,
		MinimumThreshold: r.MinimumThreshold,
		Status:           r.Status(),
		LastRestockedAt:  r.LastRestockedAt,
		Version:          r.Version,
	}
}

// StockStatusFilter restringe a listagem pelo estado derivado.
type StockStatusFilter string

const (
	FilterAll        StockStatusFilter = "all"
	FilterLow        StockStatusFilter = "low"
	FilterOutOfStock StockStatusFilter = "out-of-stock"
)

// StockSortKey define a ordenação da listagem.
type StockSortKey string

const (
	SortByName     StockSortKey = "name"   // lexicográfica sensível ao idioma
	SortByQuantity StockSortKey = "stock"  // quantidade decrescente
	SortByStatus   StockSortKey = "status" // lexicográfica pelo rótulo do estado
)

// StockFilter são os critérios da camada de consulta.
type StockFilter struct {
	Keyword string
	Status  StockStatusFilter
	Sort    StockSortKey
}

// --- Payloads de entrada (um struct imutável por operação) ---

// InboundRequest é o payload de uma entrada (reposição) de estoque.
type InboundRequest struct {
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"` // Zero significa "agora"
	Note       string    `json:"note,omitempty"`
	Actor      string    `json:"-"`
}

// OutboundRequest é o payload de uma saída de estoque.
type OutboundRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Note      string `json:"note,omitempty"`
	Actor     string `json:"-"`
}

// ThresholdUpdateRequest altera o limite mínimo de um produto.
// ExpectedVersion diferente de zero ativa a verificação otimista.
type ThresholdUpdateRequest struct {
	ProductID        string `json:"-"`
	MinimumThreshold int    `json:"minimum_threshold"`
	ExpectedVersion  int    `json:"expected_version,omitempty"`
}

// StockMovement é a mutação já validada que o repositório aplica atomicamente.
type StockMovement struct {
	Direction   Direction
	ProductID   string
	ProductName string
	Quantity    int
	Reason      string
	Note        string
	Actor       string
	OccurredAt  time.Time
}

// MovementResult é o resultado de uma entrada ou saída bem-sucedida.
type MovementResult struct {
	Stock       StockView         `json:"stock"`
	Transaction TransactionRecord `json:"transaction"`
}

// StockAlertSummary alimenta o painel de alertas de estoque.
type StockAlertSummary struct {
	Total int         `json:"total"`
	Items []StockView `json:"items"`
}
