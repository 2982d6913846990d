// Package tx define el puerto del coordinador transaccional: la unidad de
// trabajo atómica dentro de la cual ocurren todas las mutaciones de stock,
// líneas, asientos contables y registros padre.
package tx

import (
	"context"

	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
// Todo lo que se lea o escriba a través de ellos participa del mismo
// alcance atómico.
type Repos struct {
	Products     repository.ProductRepository
	Orders       repository.OrderRepository
	Sales        repository.SaleRepository
	Transactions repository.TransactionRepository
	Clients      repository.ClientRepository
	Branches     repository.BranchRepository
	Users        repository.UserRepository
}

// Scope es un alcance atómico con manejo manual: el caller decide Commit o
// Rollback en cada rama. Lo necesitan las operaciones que inspeccionan el
// estado actual y devuelven errores distintos según lo encontrado
// (confirmar/cancelar una orden) sin un rollback-y-relanzar genérico.
type Scope interface {
	Repos() Repos
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Runner ejecuta unidades de trabajo atómicas. Run hace Commit implícito si
// fn retorna nil y Rollback si retorna error; Begin entrega un Scope de
// manejo manual. Ambos patrones garantizan el mismo contrato: o todas las
// escrituras del alcance quedan, o ninguna.
type Runner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
	Begin(ctx context.Context) (Scope, error)
}
