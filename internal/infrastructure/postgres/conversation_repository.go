package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

var _ repository.ConversationRepository = (*ConversationRepo)(nil)

// ConversationRepo implementação do porto ConversationRepository sobre
// PostgreSQL (usável com pool ou tx).
type ConversationRepo struct {
	q Querier
}

// NewConversationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConversationRepository(q Querier) *ConversationRepo {
	return &ConversationRepo{q: q}
}

// Create persiste uma nova conversa.
func (r *ConversationRepo) Create(c *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, customer_name, customer_phone, customer_avatar, status, assigned_to, last_message_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CustomerName, c.CustomerPhone, nullIfEmpty(c.CustomerAvatar),
		c.Status, c.AssignedTo, c.LastMessageAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

// GetByID obtém uma conversa por ID.
func (r *ConversationRepo) GetByID(id string) (*entity.Conversation, error) {
	query := `
		SELECT id, customer_name, customer_phone, COALESCE(customer_avatar, ''), status, assigned_to, last_message_at, created_at, updated_at
		FROM conversations WHERE id = $1`
	var c entity.Conversation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CustomerName, &c.CustomerPhone, &c.CustomerAvatar,
		&c.Status, &c.AssignedTo, &c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// List lista conversas ordenadas pela última mensagem. status vazio = todas.
func (r *ConversationRepo) List(status string, limit, offset int) ([]*entity.Conversation, error) {
	query := `
		SELECT id, customer_name, customer_phone, COALESCE(customer_avatar, ''), status, assigned_to, last_message_at, created_at, updated_at
		FROM conversations
		WHERE ($1 = '' OR status = $1)
		ORDER BY last_message_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Conversation
	for rows.Next() {
		var c entity.Conversation
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.CustomerPhone, &c.CustomerAvatar,
			&c.Status, &c.AssignedTo, &c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus muda o status da conversa.
func (r *ConversationRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conversations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update conversation status: %w", err)
	}
	return nil
}

// Assign atribui (ou remove, com nil) o vendedor responsável.
func (r *ConversationRepo) Assign(id string, sellerID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conversations SET assigned_to = $2, updated_at = now() WHERE id = $1`,
		id, sellerID,
	)
	if err != nil {
		return fmt.Errorf("assign conversation: %w", err)
	}
	return nil
}

// TouchLastMessage avança lastMessageAt. GREATEST preserva o invariante
// mesmo se duas mensagens forem gravadas quase simultaneamente.
func (r *ConversationRepo) TouchLastMessage(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conversations SET last_message_at = GREATEST(last_message_at, $2), updated_at = now() WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	return nil
}
