package entity

import "time"

// Estados de una sucursal.
const (
	BranchStatusActive   = "Activo"
	BranchStatusInactive = "Inactivo"
)

// Branch representa una sucursal del negocio. Es dueña de sus usuarios
// y de sus productos, y toda transacción del libro contable la referencia.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Status    string // Activo | Inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
