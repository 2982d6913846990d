// Package testutil provee repositorios en memoria y un coordinador
// transaccional con semántica real de commit/rollback (snapshot y
// restauración) para probar los casos de uso sin base de datos.
package testutil

import (
	"context"

	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Store contiene el estado en memoria compartido por los repositorios.
type Store struct {
	d *data
}

type data struct {
	products     map[string]*entity.Product
	orders       map[string]*entity.Order
	orderItems   map[string][]*entity.OrderItem
	sales        map[string]*entity.Sale
	saleItems    map[string][]*entity.SaleItem
	transactions map[string]*entity.Transaction
	clients      map[string]*entity.Client
	branches     map[string]*entity.Branch
	users        map[string]*entity.User
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

func newData() *data {
	return &data{
		products:     map[string]*entity.Product{},
		orders:       map[string]*entity.Order{},
		orderItems:   map[string][]*entity.OrderItem{},
		sales:        map[string]*entity.Sale{},
		saleItems:    map[string][]*entity.SaleItem{},
		transactions: map[string]*entity.Transaction{},
		clients:      map[string]*entity.Client{},
		branches:     map[string]*entity.Branch{},
		users:        map[string]*entity.User{},
	}
}

// clone copia profunda del estado, base de la semántica de rollback.
func (d *data) clone() *data {
	c := newData()
	for k, v := range d.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range d.orders {
		cp := *v
		c.orders[k] = &cp
	}
	for k, items := range d.orderItems {
		cs := make([]*entity.OrderItem, len(items))
		for i, it := range items {
			cp := *it
			cs[i] = &cp
		}
		c.orderItems[k] = cs
	}
	for k, v := range d.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for k, items := range d.saleItems {
		cs := make([]*entity.SaleItem, len(items))
		for i, it := range items {
			cp := *it
			cs[i] = &cp
		}
		c.saleItems[k] = cs
	}
	for k, v := range d.transactions {
		cp := *v
		c.transactions[k] = &cp
	}
	for k, v := range d.clients {
		cp := *v
		c.clients[k] = &cp
	}
	for k, v := range d.branches {
		cp := *v
		c.branches[k] = &cp
	}
	for k, v := range d.users {
		cp := *v
		c.users[k] = &cp
	}
	return c
}

// Repos retorna los repositorios sobre el estado actual del Store.
func (s *Store) Repos() tx.Repos {
	return tx.Repos{
		Products:     &productRepo{s},
		Orders:       &orderRepo{s},
		Sales:        &saleRepo{s},
		Transactions: &transactionRepo{s},
		Clients:      &clientRepo{s},
		Branches:     &branchRepo{s},
		Users:        &userRepo{s},
	}
}

// Runner retorna un coordinador transaccional sobre el Store.
func (s *Store) Runner() tx.Runner {
	return &runner{s: s}
}

type runner struct {
	s *Store
}

// Run toma un snapshot, ejecuta fn y restaura el snapshot si fn falla.
func (r *runner) Run(_ context.Context, fn func(tx.Repos) error) error {
	snap := r.s.d.clone()
	if err := fn(r.s.Repos()); err != nil {
		r.s.d = snap
		return err
	}
	return nil
}

// Begin entrega un alcance de manejo manual sobre el mismo snapshot.
func (r *runner) Begin(_ context.Context) (tx.Scope, error) {
	return &scope{s: r.s, snap: r.s.d.clone()}, nil
}

type scope struct {
	s    *Store
	snap *data
	done bool
}

func (sc *scope) Repos() tx.Repos { return sc.s.Repos() }

func (sc *scope) Commit(context.Context) error {
	sc.done = true
	return nil
}

func (sc *scope) Rollback(context.Context) error {
	if sc.done {
		return nil
	}
	sc.s.d = sc.snap
	sc.done = true
	return nil
}
