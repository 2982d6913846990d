package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
)

var _ tx.Runner = (*TxRunner)(nil)

// TxRunner ejecuta alcances atómicos sobre transacciones PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// NewRepos construye el juego completo de repositorios sobre un Querier
// (pool para lecturas sueltas, tx para alcances atómicos).
func NewRepos(q Querier) tx.Repos {
	return tx.Repos{
		Products:     NewProductRepository(q),
		Orders:       NewOrderRepository(q),
		Sales:        NewSaleRepository(q),
		Transactions: NewTransactionRepository(q),
		Clients:      NewClientRepository(q),
		Branches:     NewBranchRepository(q),
		Users:        NewUserRepository(q),
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit si fn retorna nil o Rollback si retorna error.
func (r *TxRunner) Run(ctx context.Context, fn func(repos tx.Repos) error) error {
	dbTx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if err := fn(NewRepos(dbTx)); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Begin abre una transacción y entrega un Scope de manejo manual.
func (r *TxRunner) Begin(ctx context.Context) (tx.Scope, error) {
	dbTx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &pgScope{tx: dbTx, repos: NewRepos(dbTx)}, nil
}

// pgScope alcance atómico manual sobre una pgx.Tx.
type pgScope struct {
	tx    pgx.Tx
	repos tx.Repos
}

func (s *pgScope) Repos() tx.Repos {
	return s.repos
}

func (s *pgScope) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *pgScope) Rollback(ctx context.Context) error {
	return s.tx.Rollback(ctx)
}
