package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/auth"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests do guard de autorização — admin ou dono
// ──────────────────────────────────────────────────────────────────────────────

func adminPrincipal() *auth.Principal {
	return &auth.Principal{
		ID:       1,
		Email:    "admin@loja.com",
		Profiles: []string{entity.ProfileCustomer, entity.ProfileAdmin},
	}
}

func customerPrincipal() *auth.Principal {
	return &auth.Principal{
		ID:       42,
		Email:    "maria@gmail.com",
		Profiles: []string{entity.ProfileCustomer},
	}
}

func TestPrincipalNulo_NegaTudo(t *testing.T) {
	var p *auth.Principal

	assert.False(t, p.HasProfile(entity.ProfileAdmin), "principal nulo não possui perfil algum")
	assert.False(t, p.CanAccessID(42), "principal nulo não acessa registro algum")
	assert.False(t, p.CanAccessEmail("maria@gmail.com"), "principal nulo não acessa email algum")
}

func TestCanAccessID_AdminAcessaQualquerID(t *testing.T) {
	p := adminPrincipal()

	assert.True(t, p.CanAccessID(p.ID), "admin acessa o próprio registro")
	assert.True(t, p.CanAccessID(42), "admin acessa registro de terceiro")
	assert.True(t, p.CanAccessID(99999), "admin acessa até id inexistente (a negativa vem do not found)")
}

func TestCanAccessID_ClienteAcessaApenasOProprio(t *testing.T) {
	p := customerPrincipal()

	assert.True(t, p.CanAccessID(42), "cliente acessa o próprio id")
	assert.False(t, p.CanAccessID(43), "cliente não acessa id de terceiro")
	assert.False(t, p.CanAccessID(0), "cliente não acessa id zero")
}

func TestCanAccessEmail_AdminAcessaQualquerEmail(t *testing.T) {
	p := adminPrincipal()

	assert.True(t, p.CanAccessEmail("maria@gmail.com"))
	assert.True(t, p.CanAccessEmail("outro@loja.com"))
}

func TestCanAccessEmail_ClienteAcessaApenasOProprio(t *testing.T) {
	p := customerPrincipal()

	assert.True(t, p.CanAccessEmail("maria@gmail.com"), "cliente acessa o próprio email")
	assert.False(t, p.CanAccessEmail("outra@gmail.com"), "cliente não acessa email de terceiro")
	// Comparação exata, sem normalização de caixa aqui (o email é a chave como gravada).
	assert.False(t, p.CanAccessEmail("MARIA@GMAIL.COM"))
}

func TestHasProfile_ListaDePerfis(t *testing.T) {
	p := adminPrincipal()

	assert.True(t, p.HasProfile(entity.ProfileAdmin))
	assert.True(t, p.HasProfile(entity.ProfileCustomer))
	assert.False(t, p.HasProfile("gerente"), "perfil não atribuído")

	semPerfis := &auth.Principal{ID: 7, Email: "x@y.com"}
	assert.False(t, semPerfis.HasProfile(entity.ProfileCustomer), "lista vazia de perfis nega tudo")
}
