package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo persiste a configuração do bot (linha única).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devolve a configuração salva, ou nil se ainda não houver.
func (r *SettingsRepo) Get() (*entity.BotSettings, error) {
	query := `
		SELECT id, welcome_message, payment_methods, business_hours, enabled, updated_at
		FROM bot_settings ORDER BY updated_at DESC LIMIT 1`
	var s entity.BotSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.WelcomeMessage, &s.PaymentMethods, &s.BusinessHours, &s.Enabled, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bot settings: %w", err)
	}
	return &s, nil
}

// Upsert insere ou atualiza a linha de configuração.
func (r *SettingsRepo) Upsert(s *entity.BotSettings) error {
	query := `
		INSERT INTO bot_settings (id, welcome_message, payment_methods, business_hours, enabled, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET welcome_message = EXCLUDED.welcome_message,
		              payment_methods = EXCLUDED.payment_methods,
		              business_hours  = EXCLUDED.business_hours,
		              enabled         = EXCLUDED.enabled,
		              updated_at      = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.WelcomeMessage, s.PaymentMethods, s.BusinessHours, s.Enabled, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bot settings: %w", err)
	}
	return nil
}
