package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia del libro contable.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, type, category, amount, reason, date, sale_id, order_id, branch_id, created_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Reason,
		&t.Date, &t.SaleID, &t.OrderID, &t.BranchID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un asiento.
func (r *TransactionRepo) Create(tr *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, category, amount, reason, date, sale_id, order_id, branch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tr.ID, tr.Type, tr.Category, tr.Amount, tr.Reason, tr.Date,
		tr.SaleID, tr.OrderID, tr.BranchID, tr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByBranch lista asientos con paginación, por fecha descendente.
// branchID vacío lista todas las sucursales.
func (r *TransactionRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ($1 = '' OR branch_id = $1)
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByOrder lista los asientos ligados a una orden.
func (r *TransactionRepo) ListByOrder(orderID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by order: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListBySale lista los asientos ligados a una venta.
func (r *TransactionRepo) ListBySale(saleID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by sale: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza los campos escalares de un asiento.
func (r *TransactionRepo) Update(tr *entity.Transaction) error {
	query := `
		UPDATE transactions SET type = $2, category = $3, amount = $4, reason = $5, date = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tr.ID, tr.Type, tr.Category, tr.Amount, tr.Reason, tr.Date,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina un asiento por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// DeleteByOrder borra todos los asientos de una orden.
func (r *TransactionRepo) DeleteByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete transactions by order: %w", err)
	}
	return nil
}

// DeleteBySale borra todos los asientos de una venta.
func (r *TransactionRepo) DeleteBySale(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete transactions by sale: %w", err)
	}
	return nil
}

// DeleteByOrderCategory borra los asientos de una orden con la categoría dada.
// Es la base del borrar-y-recrear de las actualizaciones.
func (r *TransactionRepo) DeleteByOrderCategory(orderID, category string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM transactions WHERE order_id = $1 AND category = $2`, orderID, category)
	if err != nil {
		return fmt.Errorf("delete transactions by order and category: %w", err)
	}
	return nil
}

// DeleteBySaleCategory borra los asientos de una venta con la categoría dada.
func (r *TransactionRepo) DeleteBySaleCategory(saleID, category string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM transactions WHERE sale_id = $1 AND category = $2`, saleID, category)
	if err != nil {
		return fmt.Errorf("delete transactions by sale and category: %w", err)
	}
	return nil
}
