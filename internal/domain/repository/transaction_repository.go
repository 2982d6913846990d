package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia del libro contable.
// Los borrados por categoría reemplazan el emparejamiento por prefijo del
// motivo: un update de venta/orden borra y recrea sus asientos por
// (padre, categoría).
type TransactionRepository interface {
	Create(tr *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Transaction, error)
	ListByOrder(orderID string) ([]*entity.Transaction, error)
	ListBySale(saleID string) ([]*entity.Transaction, error)
	Update(tr *entity.Transaction) error
	Delete(id string) error

	DeleteByOrder(orderID string) error
	DeleteBySale(saleID string) error
	DeleteByOrderCategory(orderID, category string) error
	DeleteBySaleCategory(saleID, category string) error
}
