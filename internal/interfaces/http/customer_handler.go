package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/usecase"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain"
)

// CustomerHandler trata as requisições HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Register godoc
// @Summary      Cadastrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "Dados de cadastro"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.TaxID == "" || in.Password == "" || in.Phone1 == "" || in.CityID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, tax_id, password, phone1 e city_id são requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Code:    "VALIDATION",
				Message: "erro de validação",
				Errors:  verr.Fields,
			})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "email já existente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Buscar cliente por id
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	out, err := h.uc.Find(id, GetPrincipal(c))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Buscar cliente por email
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        value  query  string  true  "Email do cliente"
// @Success      200    {object}  dto.CustomerResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/customers/email [get]
func (h *CustomerHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("value")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro value é requerido"})
	}
	out, err := h.uc.FindByEmail(email, GetPrincipal(c))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar nome e email do cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID do cliente"
// @Param        body  body  dto.CustomerRequest  true  "Nome e email"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e email são requeridos"})
	}
	in.ID = id
	out, err := h.uc.Update(in, GetPrincipal(c))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "email já existente"})
		}
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do cliente"
// @Success      204  "sem conteúdo"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Delete(id, GetPrincipal(c)); err != nil {
		if errors.Is(err, domain.ErrDataIntegrity) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DATA_INTEGRITY", Message: err.Error()})
		}
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar todos os clientes (admin)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(GetPrincipal(c))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Page godoc
// @Summary      Listar clientes paginados (admin)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página (0-based)"
// @Param        page_size  query  int     false  "Tamanho da página"
// @Param        order_by   query  string  false  "Coluna de ordenação (id, name, email)"
// @Param        direction  query  string  false  "ASC ou DESC"
// @Success      200  {object}  dto.CustomerPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/page [get]
func (h *CustomerHandler) Page(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	out, err := h.uc.FindPage(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// customerError traduz os erros de domínio comuns das operações de cliente
// para status HTTP.
func customerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
