package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação de OrderRepository sobre PostgreSQL (leitura).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID retorna o pedido ou (nil, nil). A coluna total é NUMERIC e chega
// como decimal.Decimal via codec registrado no pool.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT id, instant, customer_id, total FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.Instant, &o.CustomerID, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}
