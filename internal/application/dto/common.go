package dto

import "github.com/gabrielsouza/lojavirtual-api/internal/domain"

// PageRequest parâmetros de paginação e ordenação para listagens.
type PageRequest struct {
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
	OrderBy   string `query:"order_by"`
	Direction string `query:"direction"` // ASC | DESC
}

// DefaultPage aplica valores padrão aos campos não informados.
func (p *PageRequest) DefaultPage() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.OrderBy == "" {
		p.OrderBy = "name"
	}
	if p.Direction == "" {
		p.Direction = "ASC"
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse corpo de erro de validação com as violações por campo.
type ValidationErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Errors  []domain.FieldMessage `json:"errors"`
}
