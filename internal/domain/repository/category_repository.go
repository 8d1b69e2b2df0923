package repository

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// CategoryRepository porto de leitura para categorias do catálogo.
type CategoryRepository interface {
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
