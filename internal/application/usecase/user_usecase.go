package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// UserUseCase gestão da equipe: convite, listagem e atualização de
// role/permissões. A ativação da conta fica no pacote auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Invite cria um usuário pendente com token de convite. O usuário só
// consegue logar depois de ativar a conta com o token e definir a senha.
func (uc *UserUseCase) Invite(in dto.InviteUserRequest) (*dto.InviteUserResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	token := uuid.New().String()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Name:        name,
		Role:        role,
		Status:      entity.UserPending,
		Permissions: in.Permissions,
		InviteToken: &token,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.InviteUserResponse{
		User:        *dto.ToUserResponse(user),
		InviteToken: token,
	}, nil
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// List pagina os usuários da equipe.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualização parcial: nome, role, status e permissões.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.UserActive, entity.UserInactive:
		default:
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if len(in.Permissions) > 0 {
		user.Permissions = in.Permissions
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}
