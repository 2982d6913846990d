package entity

import "time"

// Roles de usuario.
const (
	RoleAdministrator = "Administrador"
	RoleUser          = "Usuario"
)

// User representa un usuario del sistema. Pertenece a exactamente una
// sucursal; ventas y órdenes solo pueden atribuirse a usuarios de la
// sucursal que referencian. PasswordHash es bcrypt, nunca texto plano.
type User struct {
	ID           string
	Name         string
	LastName     string
	Username     string
	PasswordHash string
	Role         string // Administrador | Usuario
	BranchID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
