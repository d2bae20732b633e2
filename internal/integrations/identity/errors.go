package identity

import "errors"

var (
	// ErrInvalidToken возвращается при неверной подписи, истекшем сроке или неполных claims
	ErrInvalidToken = errors.New("identity: invalid token")
)
