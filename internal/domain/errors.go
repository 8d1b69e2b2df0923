package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrUnauthorized    = errors.New("acesso negado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrDataIntegrity   = errors.New("violação de integridade de dados")
	ErrInvalidArgument = errors.New("argumento inválido")
)

// FieldMessage associa uma mensagem de validação a um campo específico do payload.
type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega todas as violações encontradas em uma passada,
// para que o chamador possa reportar todos os problemas em uma única resposta.
type ValidationError struct {
	Fields []FieldMessage
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "erro de validação"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "erro de validação: " + strings.Join(msgs, "; ")
}

// Add registra uma violação de campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldMessage{Field: field, Message: message})
}

// HasErrors indica se alguma violação foi registrada.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
