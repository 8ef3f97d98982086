package entity

import "time"

// Roles válidos para Member. Equivalen a los permisos SiteMember y Admin del sitio.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Member representa un miembro con cuenta en el sitio.
type Member struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	FirstName    string
	LastName     string
	Role         string // member, admin
	Status       string // active, blocked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
