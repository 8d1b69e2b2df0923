package repository

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// OrderRepository porto de leitura para pedidos (referência).
type OrderRepository interface {
	GetByID(id int64) (*entity.Order, error)
}
