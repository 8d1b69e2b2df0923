package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo implementação de StateRepository sobre PostgreSQL.
type StateRepo struct {
	q Querier
}

// NewStateRepository constrói o adaptador.
func NewStateRepository(q Querier) *StateRepo {
	return &StateRepo{q: q}
}

// GetByID retorna o estado ou (nil, nil).
func (r *StateRepo) GetByID(id int64) (*entity.State, error) {
	var s entity.State
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM states WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get state: %w", err)
	}
	return &s, nil
}

// ListOrderedByName retorna todos os estados ordenados por nome.
func (r *StateRepo) ListOrderedByName() ([]*entity.State, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM states ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()
	var list []*entity.State
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
