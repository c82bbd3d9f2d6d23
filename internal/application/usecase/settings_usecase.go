package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// SettingsUseCase lê e atualiza a configuração do bot (linha única).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devolve a configuração vigente; antes da primeira gravação,
// devolve os padrões.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultBotSettings()
	}
	return dto.ToSettingsResponse(settings), nil
}

// Update aplica uma atualização parcial e persiste.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultBotSettings()
		settings.ID = uuid.New().String()
	}
	if in.WelcomeMessage != nil {
		settings.WelcomeMessage = *in.WelcomeMessage
	}
	if in.PaymentMethods != nil {
		settings.PaymentMethods = in.PaymentMethods
	}
	if in.BusinessHours != nil {
		settings.BusinessHours = *in.BusinessHours
	}
	if in.Enabled != nil {
		settings.Enabled = *in.Enabled
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return dto.ToSettingsResponse(settings), nil
}
