// model/usuario.go
package model

// Usuario is the authenticated caller, built from the verified token claims
// (Keycloak shape: sub, email, given_name, family_name).
type Usuario struct {
	UUID         string   `json:"uuidUsuarioKeycloak"`
	Email        string   `json:"email"`
	PrimeiroNome string   `json:"primeiroNome"`
	UltimoNome   string   `json:"ultimoNome"`
	Authorities  []string `json:"-"`
}

// HasAuthority reports whether the user carries the given role authority.
func (u Usuario) HasAuthority(a string) bool {
	for _, have := range u.Authorities {
		if have == a {
			return true
		}
	}
	return false
}
