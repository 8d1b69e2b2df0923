package repository

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// AddressRepository define o porto de persistência para Address.
type AddressRepository interface {
	// CreateAll persiste os endereços informados, preenchendo os IDs atribuídos.
	CreateAll(addresses []*entity.Address) error
	ListByCustomer(customerID int64) ([]*entity.Address, error)
}
