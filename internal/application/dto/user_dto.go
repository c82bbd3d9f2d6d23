package dto

import (
	"encoding/json"
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// LoginRequest credenciais de login da equipe.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// InviteUserRequest cria um usuário pendente com token de convite.
type InviteUserRequest struct {
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Permissions json.RawMessage `json:"permissions"`
}

// InviteUserResponse devolve o token que o convidado usa para ativar a conta.
type InviteUserResponse struct {
	User        UserResponse `json:"user"`
	InviteToken string       `json:"inviteToken"`
}

// ActivateUserRequest ativa a conta: convite + senha escolhida.
type ActivateUserRequest struct {
	InviteToken string `json:"inviteToken"`
	Password    string `json:"password"`
}

// UpdateUserRequest atualização parcial de um usuário da equipe.
type UpdateUserRequest struct {
	Name        *string         `json:"name"`
	Role        *string         `json:"role"`
	Status      *string         `json:"status"`
	Permissions json.RawMessage `json:"permissions"`
}

// UserResponse representação externa de um usuário (nunca expõe hash/convite).
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// UserListResponse lista paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToUserResponse converte a entidade para o DTO de resposta.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
