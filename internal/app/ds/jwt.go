package ds

import (
	"heavyprofile/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	Login string    `json:"login"`
	Role  role.Role `json:"role"`
}
