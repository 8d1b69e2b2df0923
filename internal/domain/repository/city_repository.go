package repository

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// CityRepository porto de leitura para cidades (referência).
type CityRepository interface {
	GetByID(id int64) (*entity.City, error)
	// ListByState retorna as cidades do estado ordenadas por nome.
	ListByState(stateID int64) ([]*entity.City, error)
}

// StateRepository porto de leitura para estados (referência).
type StateRepository interface {
	GetByID(id int64) (*entity.State, error)
	// ListOrderedByName retorna todos os estados ordenados por nome.
	ListOrderedByName() ([]*entity.State, error)
}
