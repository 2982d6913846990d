package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
