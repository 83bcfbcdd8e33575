package types

import "github.com/golang-jwt/jwt/v5"

// Context keys set by the JWT middleware.
const (
	ContextClaimsKey = "claims"
	ContextUserKey   = "user"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
