package repository

import "github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"

// SettingsRepository persiste a linha única de configuração do bot.
type SettingsRepository interface {
	// Get devolve nil (sem erro) quando ainda não há configuração salva.
	Get() (*entity.BotSettings, error)
	Upsert(settings *entity.BotSettings) error
}
