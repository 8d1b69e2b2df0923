package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/usecase"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ usecase.CustomerTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, entregando
// repositórios atados à tx. É a fronteira transacional do insert de cliente:
// linha do cliente e linhas de endereço confirmam ou revertem juntas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia a transação, executa fn com repos atados à tx e faz Commit ou
// Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(customers repository.CustomerRepository, addresses repository.AddressRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewAddressRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
