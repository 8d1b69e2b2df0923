package dto

import "time"

// RegisterCustomerRequest payload de cadastro de cliente: dados do cliente,
// um endereço e de um a três telefones (phone2 e phone3 opcionais).
type RegisterCustomerRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=120"`
	Email      string `json:"email" validate:"required,email"`
	TaxID      string `json:"tax_id" validate:"required"`
	PersonType int    `json:"person_type" validate:"required,oneof=1 2"`
	Password   string `json:"password" validate:"required,min=8"`

	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Complement string `json:"complement"`
	District   string `json:"district" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"required"`
	CityID     int64  `json:"city_id" validate:"required"`

	Phone1 string `json:"phone1" validate:"required"`
	Phone2 string `json:"phone2"`
	Phone3 string `json:"phone3"`
}

// CustomerRequest payload leve de exibição/edição: apenas id, nome e email.
type CustomerRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required,min=3,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// CustomerResponse saída de um cliente (nunca inclui o hash da senha).
type CustomerResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	TaxID      string            `json:"tax_id,omitempty"`
	PersonType int               `json:"person_type,omitempty"`
	Profiles   []string          `json:"profiles,omitempty"`
	Phones     []string          `json:"phones,omitempty"`
	Addresses  []AddressResponse `json:"addresses,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// CustomerPageResponse página de clientes com metadados.
type CustomerPageResponse struct {
	Content  []CustomerResponse `json:"content"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
}

// AddressResponse saída de um endereço.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	ZipCode    string `json:"zip_code"`
	CityID     int64  `json:"city_id"`
}
