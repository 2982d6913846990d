// Package stock implementa el libro de stock: la única autoridad sobre la
// cantidad disponible de cada producto. Ningún caso de uso decrementa o
// incrementa stock por fuera de Reserve/Release.
package stock

import (
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

// Ledger opera sobre el repositorio de productos atado a la transacción del
// caller. El chequeo-y-decremento es atómico porque GetForUpdate bloquea la
// fila (SELECT FOR UPDATE) hasta el commit o rollback del alcance.
type Ledger struct{}

// Reserve descuenta quantity del stock del producto y retorna el stock
// resultante. Falla con ErrInvalidQuantity si quantity <= 0, con
// ErrProductNotFound si el producto no existe y con ErrInsufficientStock si
// el stock disponible es menor a lo pedido.
func (Ledger) Reserve(products repository.ProductRepository, productID string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	if product.Stock < quantity {
		return 0, domain.ErrInsufficientStock
	}
	newStock := product.Stock - quantity
	if err := products.UpdateStock(productID, newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}

// Release devuelve quantity al stock del producto (cancelación, eliminación
// o reemplazo de líneas) y retorna el stock resultante. Falla con
// ErrInvalidQuantity si quantity <= 0 y con ErrProductNotFound si el
// producto no existe.
func (Ledger) Release(products repository.ProductRepository, productID string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	newStock := product.Stock + quantity
	if err := products.UpdateStock(productID, newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}
