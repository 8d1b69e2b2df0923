package auth

import (
	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
	"github.com/gabrielsouza/lojavirtual-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação: login de clientes cadastrados.
type AuthUseCase struct {
	customerRepo repository.CustomerRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(customerRepo repository.CustomerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customerRepo: customerRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha com bcrypt, gera o JWT e retorna token + cliente.
// Credenciais inválidas retornam domain.ErrUnauthorized, sem distinguir
// "email não existe" de "senha errada".
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := uc.customerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, customer.Email, customer.Profiles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Customer: dto.CustomerResponse{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
		},
	}, nil
}
