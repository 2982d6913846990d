package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y es la base del
// contrato reservar/liberar del libro de stock; UpdateStock es el único
// camino de escritura del campo stock y solo debe invocarse desde
// stock.Ledger dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	Delete(id string) error
}
