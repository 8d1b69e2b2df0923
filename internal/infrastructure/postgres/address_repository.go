package postgres

import (
	"context"
	"fmt"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementação de AddressRepository (usável com pool ou tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// CreateAll persiste os endereços, preenchendo os IDs atribuídos.
func (r *AddressRepo) CreateAll(addresses []*entity.Address) error {
	query := `
		INSERT INTO addresses (street, number, complement, district, zip_code, customer_id, city_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	for _, a := range addresses {
		err := r.q.QueryRow(context.Background(), query,
			a.Street, a.Number, a.Complement, a.District, a.ZipCode, a.CustomerID, a.CityID,
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}
	}
	return nil
}

// ListByCustomer retorna os endereços do cliente.
func (r *AddressRepo) ListByCustomer(customerID int64) ([]*entity.Address, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, street, number, complement, district, zip_code, customer_id, city_id
		FROM addresses WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.Number, &a.Complement, &a.District, &a.ZipCode, &a.CustomerID, &a.CityID); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
