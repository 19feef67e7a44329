package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims issued to API clients
type Claims struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
