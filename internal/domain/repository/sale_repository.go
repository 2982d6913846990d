package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error

	CreateItem(item *entity.SaleItem) error
	ItemsBySale(saleID string) ([]*entity.SaleItem, error)
	DeleteItems(saleID string) error
}
