package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ repository.CityRepository = (*CityRepo)(nil)

// CityRepo implementação de CityRepository sobre PostgreSQL.
type CityRepo struct {
	q Querier
}

// NewCityRepository constrói o adaptador.
func NewCityRepository(q Querier) *CityRepo {
	return &CityRepo{q: q}
}

// GetByID retorna a cidade ou (nil, nil).
func (r *CityRepo) GetByID(id int64) (*entity.City, error) {
	var c entity.City
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, state_id FROM cities WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.StateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// ListByState retorna as cidades do estado ordenadas por nome.
func (r *CityRepo) ListByState(stateID int64) ([]*entity.City, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, state_id FROM cities WHERE state_id = $1 ORDER BY name`, stateID)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()
	var list []*entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.StateID); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
