package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	List(limit, offset int) ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	Delete(id string) error
}
