package repository

import (
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// ConversationRepository define o porto de persistência para Conversation (DIP).
type ConversationRepository interface {
	Create(conversation *entity.Conversation) error
	GetByID(id string) (*entity.Conversation, error)
	// List devolve conversas ordenadas por última mensagem (mais recente primeiro).
	// status vazio lista todas.
	List(status string, limit, offset int) ([]*entity.Conversation, error)
	UpdateStatus(id, status string) error
	Assign(id string, sellerID *string) error
	// TouchLastMessage avança lastMessageAt. Chamado na mesma transação
	// do insert da mensagem para manter o invariante lastMessageAt >= createdAt
	// da mensagem mais nova.
	TouchLastMessage(id string, at time.Time) error
}
