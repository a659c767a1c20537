package authenticating

import "errors"

var (
	// ErrInvalidCredentials indica usuário ou senha incorretos.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrMissingCredentials indica login sem usuário ou senha.
	ErrMissingCredentials = errors.New("usuário e senha são obrigatórios")

	// ErrInvalidToken indica token ausente, malformado ou expirado.
	ErrInvalidToken = errors.New("token inválido")
)
