package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/auth"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/br"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/repository"
)

// CustomerTxRunner executa fn dentro de uma transação, entregando repositórios
// atados à tx. O insert de cliente + endereços exige essa fronteira: ou as
// duas escritas confirmam, ou as duas revertem.
type CustomerTxRunner interface {
	Run(ctx context.Context, fn func(customers repository.CustomerRepository, addresses repository.AddressRepository) error) error
}

// sortColumns colunas aceitas na ordenação de listagens paginadas.
// As chaves "nome"/"name" apontam para a mesma coluna; nada além disso
// chega ao SQL.
var sortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"nome":  "name",
	"email": "email",
}

// CustomerUseCase diretório de clientes: cadastro, consulta, atualização,
// exclusão e listagens, aplicando o guard de autorização antes de qualquer
// leitura ou mutação de registro. Erros da camada de persistência nunca
// atravessam este serviço sem tradução para erros de domínio.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   CustomerTxRunner
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx CustomerTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Register valida o payload de cadastro, monta o agregado e o persiste.
// Todas as violações de validação são coletadas e retornadas juntas em um
// *domain.ValidationError, em vez de falhar na primeira.
func (uc *CustomerUseCase) Register(in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	if verr := uc.validateRegistration(in); verr != nil {
		return nil, verr
	}
	customer, err := buildNewCustomer(in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.Insert(customer)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(saved, true), nil
}

// validateRegistration aplica a política de validação do cadastro:
// identificador fiscal conferido contra o tipo de pessoa declarado e
// unicidade do email contra o banco. Retorna nil quando não há violações.
func (uc *CustomerUseCase) validateRegistration(in dto.RegisterCustomerRequest) *domain.ValidationError {
	verr := &domain.ValidationError{}

	switch in.PersonType {
	case entity.PersonTypeIndividual:
		if !br.ValidCPF(in.TaxID) {
			verr.Add("tax_id", "CPF inválido")
		}
	case entity.PersonTypeCompany:
		if !br.ValidCNPJ(in.TaxID) {
			verr.Add("tax_id", "CNPJ inválido")
		}
	default:
		verr.Add("person_type", "tipo de pessoa desconhecido")
	}

	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		verr.Add("email", "email já existente")
	}

	if !verr.HasErrors() {
		return nil
	}
	return verr
}

// Find retorna o cliente completo (telefones e endereços). Exige que o
// principal seja admin ou o próprio dono do registro.
func (uc *CustomerUseCase) Find(id int64, p *auth.Principal) (*dto.CustomerResponse, error) {
	customer, err := uc.findEntity(id, p)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, true), nil
}

// FindByEmail retorna o cliente pela chave secundária de email, com o mesmo
// guard de autorização chaveado pelo username do principal.
func (uc *CustomerUseCase) FindByEmail(email string, p *auth.Principal) (*dto.CustomerResponse, error) {
	if !p.CanAccessEmail(email) {
		return nil, domain.ErrUnauthorized
	}
	customer, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: email %s", domain.ErrNotFound, email)
	}
	return toCustomerResponse(customer, true), nil
}

// Insert persiste o agregado. O id vindo do chamador é ignorado (o banco
// atribui a identidade) e cliente + endereços são gravados em uma única
// transação.
func (uc *CustomerUseCase) Insert(customer *entity.Customer) (*entity.Customer, error) {
	customer.ID = 0
	err := uc.tx.Run(context.Background(), func(customers repository.CustomerRepository, addresses repository.AddressRepository) error {
		if err := customers.Create(customer); err != nil {
			return err
		}
		for _, a := range customer.Addresses {
			a.CustomerID = customer.ID
		}
		return addresses.CreateAll(customer.Addresses)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Update rebusca o registro existente (reexecutando o guard via findEntity)
// e copia apenas nome e email do payload. Identificador fiscal, credencial,
// endereços e telefones são imutáveis por este caminho.
func (uc *CustomerUseCase) Update(in dto.CustomerRequest, p *auth.Principal) (*dto.CustomerResponse, error) {
	existing, err := uc.findEntity(in.ID, p)
	if err != nil {
		return nil, err
	}
	view := customerFromView(in)
	existing.Name = view.Name
	existing.Email = view.Email
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toCustomerResponse(existing, false), nil
}

// Delete rebusca o registro (guard incluído) e tenta a exclusão. Violação de
// integridade referencial (pedidos dependentes) vira domain.ErrDataIntegrity
// com explicação legível; o erro cru do banco nunca sobe.
func (uc *CustomerUseCase) Delete(id int64, p *auth.Principal) error {
	if _, err := uc.findEntity(id, p); err != nil {
		return err
	}
	if err := uc.repo.Delete(id); err != nil {
		if errors.Is(err, domain.ErrDataIntegrity) {
			return fmt.Errorf("%w: não é possível excluir porque há pedidos relacionados", domain.ErrDataIntegrity)
		}
		return err
	}
	return nil
}

// FindAll lista todos os clientes ordenados por nome. Listagem integral é
// restrita ao perfil admin; a rota correspondente também exige o perfil,
// mas a regra fica explícita aqui para não depender só do roteamento.
func (uc *CustomerUseCase) FindAll(p *auth.Principal) ([]dto.CustomerResponse, error) {
	if !p.HasProfile(entity.ProfileAdmin) {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c, false))
	}
	return out, nil
}

// FindPage delega paginação e ordenação ao banco. order_by fora da lista
// de colunas conhecidas ou direction diferente de ASC/DESC falham com
// domain.ErrInvalidArgument antes de qualquer consulta.
func (uc *CustomerUseCase) FindPage(in dto.PageRequest) (*dto.CustomerPageResponse, error) {
	in.DefaultPage()

	column, ok := sortColumns[strings.ToLower(in.OrderBy)]
	if !ok {
		return nil, fmt.Errorf("%w: order_by %q não reconhecido", domain.ErrInvalidArgument, in.OrderBy)
	}
	direction := strings.ToUpper(in.Direction)
	if direction != "ASC" && direction != "DESC" {
		return nil, fmt.Errorf("%w: direction %q não reconhecida (use ASC ou DESC)", domain.ErrInvalidArgument, in.Direction)
	}

	list, total, err := uc.repo.ListPage(in.PageSize, in.Page*in.PageSize, column, direction)
	if err != nil {
		return nil, err
	}
	content := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		content = append(content, *toCustomerResponse(c, false))
	}
	return &dto.CustomerPageResponse{
		Content:  content,
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

// findEntity aplica o guard e resolve o cliente por id, ou ErrUnauthorized /
// ErrNotFound.
func (uc *CustomerUseCase) findEntity(id int64, p *auth.Principal) (*entity.Customer, error) {
	if !p.CanAccessID(id) {
		return nil, domain.ErrUnauthorized
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return customer, nil
}

// toCustomerResponse converte a entidade em DTO. full inclui identificador
// fiscal, perfis, telefones e endereços; a forma leve fica só com id, nome
// e email (listagens).
func toCustomerResponse(c *entity.Customer, full bool) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	out := &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if !full {
		return out
	}
	out.TaxID = c.TaxID
	out.PersonType = c.PersonType
	out.Profiles = c.Profiles
	out.Phones = c.Phones
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			ID:         a.ID,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			ZipCode:    a.ZipCode,
			CityID:     a.CityID,
		})
	}
	return out
}
