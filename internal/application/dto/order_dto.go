package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// OrderItemRequest linha do pedido na requisição de finalização.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest finaliza um pedido.
type CreateOrderRequest struct {
	ConversationID *string            `json:"conversationId"`
	CustomerName   string             `json:"customerName"`
	CustomerPhone  string             `json:"customerPhone"`
	Items          []OrderItemRequest `json:"items"`
	PaymentMethod  string             `json:"paymentMethod"`
}

// UpdateOrderStatusRequest muda status do pedido e/ou do pagamento.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// OrderItemResponse linha do pedido na resposta.
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse representação externa de um pedido.
type OrderResponse struct {
	ID             string              `json:"id"`
	ConversationID *string             `json:"conversationId,omitempty"`
	CustomerName   string              `json:"customerName"`
	CustomerPhone  string              `json:"customerPhone"`
	Items          []OrderItemResponse `json:"items"`
	Total          decimal.Decimal     `json:"total"`
	PaymentMethod  string              `json:"paymentMethod"`
	PaymentStatus  string              `json:"paymentStatus"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToOrderResponse converte a entidade para o DTO de resposta.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &OrderResponse{
		ID:             o.ID,
		ConversationID: o.ConversationID,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		Items:          items,
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
	}
}
