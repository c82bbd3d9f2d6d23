package dto

import (
	"encoding/json"
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// CreateConversationRequest abre uma conversa no primeiro contato do cliente.
type CreateConversationRequest struct {
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerAvatar string `json:"customerAvatar"`
}

// ConversationResponse representação externa de uma conversa.
type ConversationResponse struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	CustomerPhone  string    `json:"customerPhone"`
	CustomerAvatar string    `json:"customerAvatar,omitempty"`
	Status         string    `json:"status"`
	AssignedTo     *string   `json:"assignedTo,omitempty"`
	LastMessageAt  time.Time `json:"lastMessageAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConversationListResponse lista paginada de conversas.
type ConversationListResponse struct {
	Items []ConversationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// AppendMessageRequest acrescenta uma mensagem à conversa.
type AppendMessageRequest struct {
	Sender   string          `json:"sender"` // customer, bot, seller
	Type     string          `json:"type"`   // text, product, product_list, image
	Content  string          `json:"content"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// MessageResponse representação externa de uma mensagem.
type MessageResponse struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversationId"`
	Sender         string          `json:"sender"`
	Type           string          `json:"type"`
	Content        string          `json:"content"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	Read           bool            `json:"read"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AppendMessageResponse mensagem gravada e, quando o bot respondeu na
// mesma chamada, a resposta dele.
type AppendMessageResponse struct {
	Message  MessageResponse  `json:"message"`
	BotReply *MessageResponse `json:"botReply,omitempty"`
}

// MessageListResponse lista de mensagens de uma conversa.
type MessageListResponse struct {
	Items []MessageResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AssignConversationRequest atribui (ou devolve ao bot, com nil) um vendedor.
type AssignConversationRequest struct {
	SellerID *string `json:"sellerId"`
}

// UpdateConversationStatusRequest muda o ciclo de vida da conversa.
type UpdateConversationStatusRequest struct {
	Status string `json:"status"` // active, waiting, closed
}

// ToConversationResponse converte a entidade para o DTO de resposta.
func ToConversationResponse(c *entity.Conversation) *ConversationResponse {
	if c == nil {
		return nil
	}
	return &ConversationResponse{
		ID:             c.ID,
		CustomerName:   c.CustomerName,
		CustomerPhone:  c.CustomerPhone,
		CustomerAvatar: c.CustomerAvatar,
		Status:         c.Status,
		AssignedTo:     c.AssignedTo,
		LastMessageAt:  c.LastMessageAt,
		CreatedAt:      c.CreatedAt,
	}
}

// ToMessageResponse converte a entidade para o DTO de resposta.
func ToMessageResponse(m *entity.Message) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         m.Sender,
		Type:           m.Type,
		Content:        m.Content,
		Metadata:       m.Metadata,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}
