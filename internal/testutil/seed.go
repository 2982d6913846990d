package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Helpers de siembra para tests.

func (s *Store) SeedBranch(id string) *entity.Branch {
	b := &entity.Branch{
		ID:      id,
		Name:    "Sucursal " + id,
		Address: "Av. Principal 123",
		Phone:   "70000000",
		Status:  entity.BranchStatusActive,
	}
	s.d.branches[id] = b
	return b
}

func (s *Store) SeedUser(id, branchID string) *entity.User {
	u := &entity.User{
		ID:       id,
		Name:     "Usuario " + id,
		Username: "user-" + id,
		Role:     entity.RoleUser,
		BranchID: branchID,
	}
	s.d.users[id] = u
	return u
}

func (s *Store) SeedClient(id string) *entity.Client {
	c := &entity.Client{
		ID:    id,
		CINIT: "1234567-" + id,
		Name:  "Cliente " + id,
		Phone: "71234567",
	}
	s.d.clients[id] = c
	return c
}

func (s *Store) SeedProduct(id, price string, stock int, branchID string) *entity.Product {
	p := &entity.Product{
		ID:        id,
		SKU:       "SKU-" + id,
		Name:      "Producto " + id,
		Category:  "General",
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		BranchID:  branchID,
		CreatedAt: time.Now(),
	}
	s.d.products[id] = p
	return p
}

// StockOf lee el stock actual de un producto, para aserciones.
func (s *Store) StockOf(productID string) int {
	p, ok := s.d.products[productID]
	if !ok {
		return -1
	}
	return p.Stock
}

// TransactionCount cuenta los asientos del libro, para aserciones.
func (s *Store) TransactionCount() int {
	return len(s.d.transactions)
}
