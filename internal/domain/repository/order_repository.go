package repository

import "github.com/jmcalvo/puntoventa-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) error

	CreateItem(item *entity.OrderItem) error
	ItemsByOrder(orderID string) ([]*entity.OrderItem, error)
	DeleteItems(orderID string) error
}
