package entity

import "time"

// Status válidos para Conversation.
const (
	ConversationActive  = "active"
	ConversationWaiting = "waiting"
	ConversationClosed  = "closed"
)

// Conversation representa um atendimento de cliente (thread de mensagens ordenadas).
// Criada no primeiro contato; nunca é apagada fisicamente.
// AssignedTo nil significa que o bot opera a conversa.
type Conversation struct {
	ID             string     `json:"id"`
	CustomerName   string     `json:"customerName"`
	CustomerPhone  string     `json:"customerPhone"`
	CustomerAvatar string     `json:"customerAvatar,omitempty"`
	Status         string     `json:"status"` // active, waiting, closed
	AssignedTo     *string    `json:"assignedTo,omitempty"`
	LastMessageAt  time.Time  `json:"lastMessageAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
