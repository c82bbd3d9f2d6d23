package entity

import (
	"encoding/json"
	"time"
)

// Roles válidos para User.
const (
	RoleDev           = "dev"
	RoleAdministrador = "administrador"
	RoleGerente       = "gerente"
	RoleVendedor      = "vendedor"
)

// Status de ciclo de vida do usuário (ativação por convite).
const (
	UserPending  = "pending"
	UserActive   = "active"
	UserInactive = "inactive"
)

// User representa um membro da equipe. O acesso é por convite:
// o usuário nasce pending com um InviteToken e só vira active
// depois de definir a senha. Permissions é um mapa de booleanos
// serializado (ex.: {"manageProducts": true, "viewReports": false}).
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"-"`
	Role         string          `json:"role"`   // dev, administrador, gerente, vendedor
	Status       string          `json:"status"` // pending, active, inactive
	Permissions  json.RawMessage `json:"permissions,omitempty"`
	InviteToken  *string         `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ValidRole informa se o role é um dos quatro conhecidos.
func ValidRole(r string) bool {
	switch r {
	case RoleDev, RoleAdministrador, RoleGerente, RoleVendedor:
		return true
	}
	return false
}
