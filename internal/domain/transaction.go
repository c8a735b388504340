package domain

import "time"

// Direction indica se a transação aumenta ou diminui o estoque.
type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

// Label devolve o rótulo exibido no back-office.
func (d Direction) Label() string {
	switch d {
	case Inbound:
		return "입고"
	case Outbound:
		return "출고"
	default:
		return string(d)
	}
}

// TransactionRecord é uma entrada imutável do histórico de movimentações.
type TransactionRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Direction   Direction `json:"direction"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"` // Obrigatório em saídas, vazio em entradas
	Note        string    `json:"note,omitempty"`
	Actor       string    `json:"actor"`
}

// OutboundReasons são os motivos oferecidos no formulário de saída.
// Qualquer motivo não vazio é aceito.
var OutboundReasons = []string{"판매", "반품", "손상", "샘플 제공", "이벤트"}
