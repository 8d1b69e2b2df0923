package usecase

import (
	"fmt"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/auth"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

// OrderUseCase leitura de pedidos (referência). Um pedido só é visível para
// admin ou para o cliente dono.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetByID retorna o pedido, aplicando o guard de dono após resolver o registro.
func (uc *OrderUseCase) GetByID(id int64, p *auth.Principal) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	if !p.CanAccessID(order.CustomerID) {
		return nil, domain.ErrUnauthorized
	}
	return &dto.OrderResponse{
		ID:         order.ID,
		Instant:    order.Instant,
		CustomerID: order.CustomerID,
		Total:      order.Total,
	}, nil
}
