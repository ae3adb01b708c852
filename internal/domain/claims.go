package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims identifica o operador que chama as rotas administrativas
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
