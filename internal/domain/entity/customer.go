package entity

import "time"

// Tipos de pessoa (código fechado, vindo do payload de cadastro).
const (
	PersonTypeIndividual = 1 // pessoa física (CPF)
	PersonTypeCompany    = 2 // pessoa jurídica (CNPJ)
)

// Perfis válidos para Customer.
const (
	ProfileAdmin    = "admin"
	ProfileCustomer = "cliente"
)

// Customer representa um cliente da loja, com seus telefones e perfis de acesso.
// ID zero significa "ainda não persistido"; o banco atribui o identificador no insert.
type Customer struct {
	ID           int64
	Name         string
	Email        string // chave secundária de busca, única entre clientes
	TaxID        string // CPF ou CNPJ, conforme PersonType
	PersonType   int
	PasswordHash string // bcrypt hash, nunca a senha em texto plano
	Profiles     []string
	Phones       []string // 1 obrigatório, até 3
	Addresses    []*Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasProfile indica se o cliente possui o perfil informado.
func (c *Customer) HasProfile(profile string) bool {
	for _, p := range c.Profiles {
		if p == profile {
			return true
		}
	}
	return false
}
