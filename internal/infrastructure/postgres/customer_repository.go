package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, tax_id, person_type, password_hash, profiles, created_at, updated_at`

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente e seus telefones, preenchendo o ID
// atribuído pelo banco.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, tax_id, person_type, password_hash, profiles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.Email, customer.TaxID, customer.PersonType,
		customer.PasswordHash, customer.Profiles, customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	for i, phone := range customer.Phones {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO customer_phones (customer_id, phone, position) VALUES ($1, $2, $3)`,
			customer.ID, phone, i,
		)
		if err != nil {
			return fmt.Errorf("insert customer phone: %w", err)
		}
	}
	return nil
}

// GetByID retorna o agregado completo (telefones e endereços) ou (nil, nil).
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := r.scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil || customer == nil {
		return nil, err
	}
	if err := r.loadAggregate(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByEmail retorna o agregado completo pela chave de email ou (nil, nil).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	customer, err := r.scanCustomer(r.q.QueryRow(context.Background(), query, email))
	if err != nil || customer == nil {
		return nil, err
	}
	if err := r.loadAggregate(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List retorna todos os clientes ordenados por nome (forma leve, sem
// telefones nem endereços).
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// ListPage retorna uma página de clientes e o total de registros. orderBy e
// direction chegam validados pela camada de aplicação (whitelist); nunca
// recebem entrada crua do usuário.
func (r *CustomerRepo) ListPage(limit, offset int, orderBy, direction string) ([]*entity.Customer, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY %s %s LIMIT $1 OFFSET $2`,
		customerColumns, orderBy, direction)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("page customers: %w", err)
	}
	defer rows.Close()
	list, err := collectCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update grava apenas nome e email; os demais campos são imutáveis por este
// caminho.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `UPDATE customers SET name = $2, email = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete remove o cliente. Telefones e endereços caem por cascata; pedidos
// dependentes disparam violação de chave estrangeira, traduzida para
// domain.ErrDataIntegrity.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDataIntegrity
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// scanCustomer lê uma linha de customers; (nil, nil) quando não há registro.
func (r *CustomerRepo) scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.TaxID, &c.PersonType,
		&c.PasswordHash, &c.Profiles, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// loadAggregate completa o agregado com telefones (na ordem de cadastro) e
// endereços.
func (r *CustomerRepo) loadAggregate(customer *entity.Customer) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT phone FROM customer_phones WHERE customer_id = $1 ORDER BY position`, customer.ID)
	if err != nil {
		return fmt.Errorf("list customer phones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return fmt.Errorf("scan customer phone: %w", err)
		}
		customer.Phones = append(customer.Phones, phone)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	addrRows, err := r.q.Query(context.Background(), `
		SELECT id, street, number, complement, district, zip_code, customer_id, city_id
		FROM addresses WHERE customer_id = $1 ORDER BY id`, customer.ID)
	if err != nil {
		return fmt.Errorf("list customer addresses: %w", err)
	}
	defer addrRows.Close()
	for addrRows.Next() {
		var a entity.Address
		if err := addrRows.Scan(&a.ID, &a.Street, &a.Number, &a.Complement, &a.District, &a.ZipCode, &a.CustomerID, &a.CityID); err != nil {
			return fmt.Errorf("scan address: %w", err)
		}
		customer.Addresses = append(customer.Addresses, &a)
	}
	return addrRows.Err()
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.TaxID, &c.PersonType,
			&c.PasswordHash, &c.Profiles, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
