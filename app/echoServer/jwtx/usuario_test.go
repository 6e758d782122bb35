package jwtx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func ctxWithClaims(claims jwt.MapClaims) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if claims != nil {
		c.Set("user", &jwt.Token{Claims: claims})
	}
	return c
}

func TestUsuarioFromContext(t *testing.T) {
	c := ctxWithClaims(jwt.MapClaims{
		"sub":         "bed91141-f8f5-478f-8ade-6e7fb9cb9ff3",
		"email":       "gabriel@example.com",
		"given_name":  "Gabriel",
		"family_name": "Pequeno",
	})
	c.Set(AuthoritiesKey, []string{"Administrador"})

	u, err := UsuarioFromContext(c)
	require.NoError(t, err)
	require.Equal(t, "bed91141-f8f5-478f-8ade-6e7fb9cb9ff3", u.UUID)
	require.Equal(t, "gabriel@example.com", u.Email)
	require.Equal(t, "Gabriel", u.PrimeiroNome)
	require.Equal(t, "Pequeno", u.UltimoNome)
	require.True(t, u.HasAuthority("Administrador"))
}

func TestUsuarioFromContext_NoToken(t *testing.T) {
	_, err := UsuarioFromContext(ctxWithClaims(nil))
	require.Error(t, err)
}

func TestUsuarioFromContext_MissingSub(t *testing.T) {
	_, err := UsuarioFromContext(ctxWithClaims(jwt.MapClaims{"email": "x@y.z"}))
	require.Error(t, err)
}

func TestAuthoritiesFromClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"resource_access": map[string]any{
			"app-livros": map[string]any{
				"roles": []any{"Administrador", "Usuario"},
			},
			"other-client": map[string]any{
				"roles": []any{"Ignored"},
			},
		},
	}
	require.Equal(t, []string{"Administrador", "Usuario"}, AuthoritiesFromClaims(claims, "app-livros"))
}

func TestAuthoritiesFromClaims_MissingPathYieldsNone(t *testing.T) {
	require.Empty(t, AuthoritiesFromClaims(jwt.MapClaims{}, "app-livros"))
	require.Empty(t, AuthoritiesFromClaims(jwt.MapClaims{"resource_access": map[string]any{}}, "app-livros"))
	require.Empty(t, AuthoritiesFromClaims(jwt.MapClaims{
		"resource_access": map[string]any{"app-livros": map[string]any{}},
	}, "app-livros"))
}
