package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

func TestSettingsGet_SemLinhaPersistidaDevolvePadroes(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(nil))

	out, err := uc.Get()
	require.NoError(t, err)

	defaults := entity.DefaultBotSettings()
	assert.Equal(t, defaults.WelcomeMessage, out.WelcomeMessage)
	assert.Equal(t, defaults.PaymentMethods, out.PaymentMethods)
	assert.True(t, out.Enabled)
}

func TestSettingsUpdate_ParcialPreservaDemaisCampos(t *testing.T) {
	repo := newFakeSettingsRepo(nil)
	uc := usecase.NewSettingsUseCase(repo)

	disabled := false
	out, err := uc.Update(dto.UpdateSettingsRequest{Enabled: &disabled})
	require.NoError(t, err)

	assert.False(t, out.Enabled)
	assert.Equal(t, entity.DefaultBotSettings().WelcomeMessage, out.WelcomeMessage,
		"campos não informados mantêm o valor anterior")

	// A mudança foi persistida.
	stored, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Enabled)
}

func TestSettingsUpdate_TrocaWelcomeEMetodos(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(nil))

	welcome := "Oi! Loja do Zé, bora achar sua peça?"
	_, err := uc.Update(dto.UpdateSettingsRequest{
		WelcomeMessage: &welcome,
		PaymentMethods: []string{"PIX"},
	})
	require.NoError(t, err)

	out, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, welcome, out.WelcomeMessage)
	assert.Equal(t, []string{"PIX"}, out.PaymentMethods)
}
