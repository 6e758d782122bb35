// app/echoServer/jwtx/usuario.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/galzit0/api-livros/model"
)

// AuthoritiesKey is where the authority middleware stores the role list.
const AuthoritiesKey = "authorities"

// ClaimsFromContext returns the verified token claims placed in the echo
// context by the JWT middleware.
func ClaimsFromContext(c echo.Context) (jwt.MapClaims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return claims, nil
}

// UsuarioFromContext builds the authenticated user from the verified token
// (sub, email, given_name, family_name) plus the extracted authorities.
func UsuarioFromContext(c echo.Context) (model.Usuario, error) {
	claims, err := ClaimsFromContext(c)
	if err != nil {
		return model.Usuario{}, err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return model.Usuario{}, errors.New("sub missing in claims")
	}

	u := model.Usuario{UUID: sub}
	if s, ok := claims["email"].(string); ok {
		u.Email = s
	}
	if s, ok := claims["given_name"].(string); ok {
		u.PrimeiroNome = s
	}
	if s, ok := claims["family_name"].(string); ok {
		u.UltimoNome = s
	}
	if roles, ok := c.Get(AuthoritiesKey).([]string); ok {
		u.Authorities = roles
	}
	return u, nil
}

// AuthoritiesFromClaims reads resource_access.<clientID>.roles. A missing
// claim path yields an empty list, not an error: the caller simply holds no
// authorities and role-gated routes answer 403.
func AuthoritiesFromClaims(claims jwt.MapClaims, clientID string) []string {
	resourceAccess, ok := claims["resource_access"].(map[string]any)
	if !ok {
		return nil
	}
	client, ok := resourceAccess[clientID].(map[string]any)
	if !ok {
		return nil
	}
	rawRoles, ok := client["roles"].([]any)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
