package testutil

import (
	"sort"

	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Los repositorios devuelven y almacenan copias, como lo haría una BD: una
// entidad mutada por el caller no cambia el estado hasta el Update.

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.d.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.d.products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.d.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.d.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.d.products {
		if branchID == "" || p.BranchID == branchID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return page(list, limit, offset), nil
}

func (r *productRepo) Update(p *entity.Product) error {
	existing, ok := r.s.d.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock = existing.Stock // el stock solo cambia vía UpdateStock
	r.s.d.products[p.ID] = &cp
	return nil
}

func (r *productRepo) UpdateStock(id string, stock int) error {
	p, ok := r.s.d.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepo) Delete(id string) error {
	delete(r.s.d.products, id)
	return nil
}

type orderRepo struct{ s *Store }

func (r *orderRepo) Create(o *entity.Order) error {
	cp := *o
	r.s.d.orders[o.ID] = &cp
	return nil
}

func (r *orderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.d.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *orderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.s.d.orders {
		cp := *o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, limit, offset), nil
}

func (r *orderRepo) Update(o *entity.Order) error {
	if _, ok := r.s.d.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.s.d.orders[o.ID] = &cp
	return nil
}

func (r *orderRepo) Delete(id string) error {
	delete(r.s.d.orders, id)
	return nil
}

func (r *orderRepo) CreateItem(it *entity.OrderItem) error {
	cp := *it
	r.s.d.orderItems[it.OrderID] = append(r.s.d.orderItems[it.OrderID], &cp)
	return nil
}

func (r *orderRepo) ItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	items := r.s.d.orderItems[orderID]
	out := make([]*entity.OrderItem, len(items))
	for i, it := range items {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (r *orderRepo) DeleteItems(orderID string) error {
	delete(r.s.d.orderItems, orderID)
	return nil
}

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.d.sales[sale.ID] = &cp
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.d.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *saleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sale := range r.s.d.sales {
		cp := *sale
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, limit, offset), nil
}

func (r *saleRepo) Update(sale *entity.Sale) error {
	if _, ok := r.s.d.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sale
	r.s.d.sales[sale.ID] = &cp
	return nil
}

func (r *saleRepo) Delete(id string) error {
	delete(r.s.d.sales, id)
	delete(r.s.d.saleItems, id) // las líneas caen en cascada con la venta
	return nil
}

func (r *saleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	r.s.d.saleItems[it.SaleID] = append(r.s.d.saleItems[it.SaleID], &cp)
	return nil
}

func (r *saleRepo) ItemsBySale(saleID string) ([]*entity.SaleItem, error) {
	items := r.s.d.saleItems[saleID]
	out := make([]*entity.SaleItem, len(items))
	for i, it := range items {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (r *saleRepo) DeleteItems(saleID string) error {
	delete(r.s.d.saleItems, saleID)
	return nil
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) Create(tr *entity.Transaction) error {
	cp := *tr
	r.s.d.transactions[tr.ID] = &cp
	return nil
}

func (r *transactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tr, ok := r.s.d.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *tr
	return &cp, nil
}

func (r *transactionRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, tr := range r.s.d.transactions {
		if branchID == "" || tr.BranchID == branchID {
			cp := *tr
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return page(list, limit, offset), nil
}

func (r *transactionRepo) ListByOrder(orderID string) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, tr := range r.s.d.transactions {
		if tr.OrderID != nil && *tr.OrderID == orderID {
			cp := *tr
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *transactionRepo) ListBySale(saleID string) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, tr := range r.s.d.transactions {
		if tr.SaleID != nil && *tr.SaleID == saleID {
			cp := *tr
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *transactionRepo) Update(tr *entity.Transaction) error {
	if _, ok := r.s.d.transactions[tr.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *tr
	r.s.d.transactions[tr.ID] = &cp
	return nil
}

func (r *transactionRepo) Delete(id string) error {
	delete(r.s.d.transactions, id)
	return nil
}

func (r *transactionRepo) DeleteByOrder(orderID string) error {
	for id, tr := range r.s.d.transactions {
		if tr.OrderID != nil && *tr.OrderID == orderID {
			delete(r.s.d.transactions, id)
		}
	}
	return nil
}

func (r *transactionRepo) DeleteBySale(saleID string) error {
	for id, tr := range r.s.d.transactions {
		if tr.SaleID != nil && *tr.SaleID == saleID {
			delete(r.s.d.transactions, id)
		}
	}
	return nil
}

func (r *transactionRepo) DeleteByOrderCategory(orderID, category string) error {
	for id, tr := range r.s.d.transactions {
		if tr.OrderID != nil && *tr.OrderID == orderID && tr.Category == category {
			delete(r.s.d.transactions, id)
		}
	}
	return nil
}

func (r *transactionRepo) DeleteBySaleCategory(saleID, category string) error {
	for id, tr := range r.s.d.transactions {
		if tr.SaleID != nil && *tr.SaleID == saleID && tr.Category == category {
			delete(r.s.d.transactions, id)
		}
	}
	return nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(c *entity.Client) error {
	for _, existing := range r.s.d.clients {
		if existing.CINIT == c.CINIT {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.d.clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.d.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *clientRepo) GetByCINIT(ciNit string) (*entity.Client, error) {
	for _, c := range r.s.d.clients {
		if c.CINIT == ciNit {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) List(limit, offset int) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.s.d.clients {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *clientRepo) Update(c *entity.Client) error {
	if _, ok := r.s.d.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.d.clients[c.ID] = &cp
	return nil
}

func (r *clientRepo) Delete(id string) error {
	delete(r.s.d.clients, id)
	return nil
}

type branchRepo struct{ s *Store }

func (r *branchRepo) Create(b *entity.Branch) error {
	cp := *b
	r.s.d.branches[b.ID] = &cp
	return nil
}

func (r *branchRepo) GetByID(id string) (*entity.Branch, error) {
	b, ok := r.s.d.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *branchRepo) List(limit, offset int) ([]*entity.Branch, error) {
	var list []*entity.Branch
	for _, b := range r.s.d.branches {
		cp := *b
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *branchRepo) Update(b *entity.Branch) error {
	if _, ok := r.s.d.branches[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	r.s.d.branches[b.ID] = &cp
	return nil
}

func (r *branchRepo) Delete(id string) error {
	delete(r.s.d.branches, id)
	return nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	for _, existing := range r.s.d.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.d.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.d.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.s.d.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.s.d.users {
		if branchID == "" || u.BranchID == branchID {
			cp := *u
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return page(list, limit, offset), nil
}

func (r *userRepo) Update(u *entity.User) error {
	if _, ok := r.s.d.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.s.d.users[u.ID] = &cp
	return nil
}

func (r *userRepo) Delete(id string) error {
	delete(r.s.d.users, id)
	return nil
}

func page[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
