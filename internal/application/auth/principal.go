package auth

import "github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"

// Principal é o ator autenticado da requisição, extraído do token JWT pelo
// middleware e passado explicitamente a cada operação (nada de contexto
// global de segurança). Um *Principal nulo significa "não autenticado".
type Principal struct {
	ID       int64
	Email    string
	Profiles []string
}

// HasProfile indica se o principal possui o perfil informado.
// Predicado puro; principal nulo nunca possui perfil algum.
func (p *Principal) HasProfile(profile string) bool {
	if p == nil {
		return false
	}
	for _, pr := range p.Profiles {
		if pr == profile {
			return true
		}
	}
	return false
}

// CanAccessID autoriza operações sobre o cliente identificado por ownerID:
// permitido se o principal é admin ou se o id é o seu próprio.
func (p *Principal) CanAccessID(ownerID int64) bool {
	if p == nil {
		return false
	}
	return p.HasProfile(entity.ProfileAdmin) || p.ID == ownerID
}

// CanAccessEmail autoriza operações chaveadas por email: permitido se o
// principal é admin ou se o email é o seu próprio username.
func (p *Principal) CanAccessEmail(ownerEmail string) bool {
	if p == nil {
		return false
	}
	return p.HasProfile(entity.ProfileAdmin) || p.Email == ownerEmail
}
