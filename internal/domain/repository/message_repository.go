package repository

import "github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"

// MessageRepository define o porto de persistência para Message (DIP).
type MessageRepository interface {
	Create(message *entity.Message) error
	// ListByConversation devolve mensagens em ordem de criação (ascendente).
	ListByConversation(conversationID string, limit, offset int) ([]*entity.Message, error)
	// MarkRead marca como lidas todas as mensagens da conversa que não
	// foram enviadas pelo remetente informado.
	MarkRead(conversationID, exceptSender string) error
}
