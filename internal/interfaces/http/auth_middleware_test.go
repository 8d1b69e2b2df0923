package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielsouza/lojavirtual-api/internal/domain/entity"
	apphttp "github.com/gabrielsouza/lojavirtual-api/internal/interfaces/http"
	pkgjwt "github.com/gabrielsouza/lojavirtual-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCustomerID = int64(42)
	testEmail      = "maria@gmail.com"
	testIssuer     = "lojavirtual-test"
	testExpMin     = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para parsear o JWT e carregar o principal em locals
//   - RequireProfile para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(allowedProfiles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireProfile(allowedProfiles...),
		func(c *fiber.Ctx) error {
			p := apphttp.GetPrincipal(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"email": p.Email,
			})
		},
	)
	return app
}

// tokenForProfiles gera um JWT com os perfis indicados.
func tokenForProfiles(t *testing.T, profiles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail, profiles, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest lança uma requisição GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireProfile
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o principal tem o perfil exigido — deve passar (HTTP 200).
func TestRequireProfile_AdminAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, tokenForProfiles(t, entity.ProfileCustomer, entity.ProfileAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve acessar rota restrita a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testEmail, body["email"], "o principal carregado deve trazer o email do token")
}

// Caso 2: perfil diferente do exigido — HTTP 403 Forbidden.
func TestRequireProfile_ClienteBloqueadoEmRotaAdmin(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, tokenForProfiles(t, entity.ProfileCustomer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cliente comum não deve acessar rota restrita a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 3: sem header Authorization — HTTP 401 MISSING_TOKEN.
func TestRequireProfile_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: token inválido / malformado — HTTP 401 INVALID_TOKEN.
func TestRequireProfile_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: header com esquema errado — HTTP 401.
func TestRequireProfile_EsquemaErrado_Retorna401(t *testing.T) {
	app := buildTestApp(entity.ProfileAdmin)
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware / GetPrincipal — extração de claims do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiPrincipal(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		require.NotNil(t, p)
		return c.JSON(fiber.Map{
			"id":       p.ID,
			"email":    p.Email,
			"profiles": p.Profiles,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForProfiles(t, entity.ProfileCustomer))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID       int64    `json:"id"`
		Email    string   `json:"email"`
		Profiles []string `json:"profiles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testCustomerID, body.ID)
	assert.Equal(t, testEmail, body.Email)
	assert.Equal(t, []string{entity.ProfileCustomer}, body.Profiles)
}

// GetPrincipal fora de uma rota autenticada normaliza para nil.
func TestGetPrincipal_SemAutenticacao_RetornaNil(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		if apphttp.GetPrincipal(c) == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg jwt — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail,
		[]string{entity.ProfileCustomer, entity.ProfileAdmin}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testCustomerID, claims.CustomerID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, []string{entity.ProfileCustomer, entity.ProfileAdmin}, claims.Profiles)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado).
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail,
		[]string{entity.ProfileCustomer}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail,
		[]string{entity.ProfileCustomer}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
