package usecase

import (
	"fmt"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

// CategoryUseCase leituras do catálogo de categorias.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// GetByID retorna a categoria ou domain.ErrNotFound.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List retorna todas as categorias.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
