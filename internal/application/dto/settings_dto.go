package dto

import (
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// UpdateSettingsRequest atualização parcial da configuração do bot.
type UpdateSettingsRequest struct {
	WelcomeMessage *string  `json:"welcomeMessage"`
	PaymentMethods []string `json:"paymentMethods"`
	BusinessHours  *string  `json:"businessHours"`
	Enabled        *bool    `json:"enabled"`
}

// SettingsResponse representação externa da configuração do bot.
type SettingsResponse struct {
	WelcomeMessage string    `json:"welcomeMessage"`
	PaymentMethods []string  `json:"paymentMethods"`
	BusinessHours  string    `json:"businessHours"`
	Enabled        bool      `json:"enabled"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToSettingsResponse converte a entidade para o DTO de resposta.
func ToSettingsResponse(s *entity.BotSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		WelcomeMessage: s.WelcomeMessage,
		PaymentMethods: s.PaymentMethods,
		BusinessHours:  s.BusinessHours,
		Enabled:        s.Enabled,
		UpdatedAt:      s.UpdatedAt,
	}
}
