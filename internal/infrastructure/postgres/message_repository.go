package postgres

import (
	"context"
	"fmt"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementação do porto MessageRepository (usável com pool ou tx).
type MessageRepo struct {
	q Querier
}

// NewMessageRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste uma nova mensagem.
func (r *MessageRepo) Create(m *entity.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender, type, content, metadata, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ConversationID, m.Sender, m.Type, m.Content, m.Metadata, m.Read, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListByConversation lista as mensagens em ordem de criação (ascendente).
func (r *MessageRepo) ListByConversation(conversationID string, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, conversation_id, sender, type, content, metadata, read, created_at
		FROM messages WHERE conversation_id = $1
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, conversationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Type, &m.Content,
			&m.Metadata, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MarkRead marca como lidas todas as mensagens da conversa que não são
// do remetente informado.
func (r *MessageRepo) MarkRead(conversationID, exceptSender string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE messages SET read = TRUE WHERE conversation_id = $1 AND sender <> $2 AND read = FALSE`,
		conversationID, exceptSender,
	)
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}
