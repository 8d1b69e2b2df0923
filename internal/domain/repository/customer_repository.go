package repository

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// CustomerRepository define o porto de persistência para Customer.
// GetByID e GetByEmail retornam (nil, nil) quando não há registro.
type CustomerRepository interface {
	// Create persiste um novo cliente (e seus telefones) e preenche o ID
	// atribuído pelo banco.
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// List retorna todos os clientes ordenados por nome.
	List() ([]*entity.Customer, error)
	// ListPage retorna uma página de clientes e o total de registros.
	// orderBy já deve chegar validado (coluna conhecida) e direction em ASC/DESC.
	ListPage(limit, offset int, orderBy, direction string) ([]*entity.Customer, int, error)
	// Update grava apenas nome e email (os demais campos são imutáveis por este caminho).
	Update(customer *entity.Customer) error
	// Delete remove o cliente; retorna domain.ErrDataIntegrity se houver
	// pedidos dependentes (violação de chave estrangeira).
	Delete(id int64) error
}
