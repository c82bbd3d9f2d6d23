package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de ciclo de vida do pedido.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Status de pagamento.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Order é o snapshot de uma transação finalizada. Os itens carregam uma
// cópia desnormalizada de id/nome/preço do produto no momento da venda,
// para que edições posteriores do catálogo não alterem pedidos antigos.
type Order struct {
	ID             string          `json:"id"`
	ConversationID *string         `json:"conversationId,omitempty"`
	CustomerName   string          `json:"customerName"`
	CustomerPhone  string          `json:"customerPhone"`
	Items          []OrderItem     `json:"items"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentStatus  string          `json:"paymentStatus"` // pending, paid, failed
	Status         string          `json:"status"`        // pending, confirmed, shipped, delivered, cancelled
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// OrderItem é uma linha do pedido.
type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
