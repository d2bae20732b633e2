package identity

import "github.com/golang-jwt/jwt/v5"

// Claims содержимое токена. Идентификатор пользователя берется из sub или из id.
type Claims struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
