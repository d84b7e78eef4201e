package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the payload of the identity-provider token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ErrInvalidToken covers every verification failure: malformed, expired,
// bad signature.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates bearer tokens against the identity-provider credential
// loaded at startup.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token, returning its decoded claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
