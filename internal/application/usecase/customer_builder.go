package usecase

import (
	"time"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// buildNewCustomer monta o agregado completo de cadastro: cliente, um
// endereço (referenciando a cidade apenas por id) e de um a três telefones,
// na ordem em que aparecem no payload. A senha é hasheada imediatamente;
// o valor em texto plano não é retido no agregado.
func buildNewCustomer(in dto.RegisterCustomerRequest) (*entity.Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:         in.Name,
		Email:        in.Email,
		TaxID:        in.TaxID,
		PersonType:   in.PersonType,
		PasswordHash: string(hash),
		Profiles:     []string{entity.ProfileCustomer},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	customer.Addresses = []*entity.Address{{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		ZipCode:    in.ZipCode,
		CityID:     in.CityID,
	}}
	customer.Phones = append(customer.Phones, in.Phone1)
	if in.Phone2 != "" {
		customer.Phones = append(customer.Phones, in.Phone2)
	}
	if in.Phone3 != "" {
		customer.Phones = append(customer.Phones, in.Phone3)
	}
	return customer, nil
}

// customerFromView monta um cliente apenas com id, nome e email, a partir do
// payload leve de exibição/edição. Sem credencial, endereços ou telefones.
func customerFromView(in dto.CustomerRequest) *entity.Customer {
	return &entity.Customer{ID: in.ID, Name: in.Name, Email: in.Email}
}
