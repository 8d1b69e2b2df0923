package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/auth"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	"github.com/gabrielsouza/lojavirtual-api/pkg/jwt"
)

// Local key para o principal autenticado em Fiber.
const LocalPrincipal = "principal"

// AuthMiddleware valida o Bearer Token JWT e coloca o *auth.Principal em
// c.Locals. Token ausente, malformado ou expirado responde 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalPrincipal, &auth.Principal{
			ID:       claims.CustomerID,
			Email:    claims.Email,
			Profiles: claims.Profiles,
		})
		return c.Next()
	}
}

// GetPrincipal devolve o principal do contexto, ou nil quando a requisição
// não está autenticada (qualquer falha de extração normaliza para nil).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// RequireProfile devolve um middleware que exige ao menos um dos perfis
// informados. Usar DEPOIS de AuthMiddleware.
func RequireProfile(profiles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "requisição não autenticada"})
		}
		for _, profile := range profiles {
			if p.HasProfile(profile) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil sem permissão para esta rota"})
	}
}

// RequireAdmin atalho para RequireProfile(admin).
func RequireAdmin() fiber.Handler {
	return RequireProfile(entity.ProfileAdmin)
}
