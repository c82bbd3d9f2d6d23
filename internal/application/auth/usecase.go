package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
	"github.com/GuilhermeCharnei/autoparts-chat/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticação da equipe: login e ativação de conta por convite.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha, gera JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}

// Activate conclui o ciclo de convite: valida o token, grava o hash
// bcrypt da senha escolhida e ativa a conta. O token é consumido
// (não pode ser reutilizado).
func (uc *AuthUseCase) Activate(in dto.ActivateUserRequest) (*dto.UserResponse, error) {
	if in.InviteToken == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByInviteToken(in.InviteToken)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserPending {
		return nil, domain.ErrInvalidInvite
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.Status = entity.UserActive
	user.InviteToken = nil
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}
