package authenticating

import "errors"

var (
	ErrAuthDisabled          = errors.New("autenticação desativada: AUTH_SECRET não configurado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMissingSubject        = errors.New("subject do token é obrigatório")
)
