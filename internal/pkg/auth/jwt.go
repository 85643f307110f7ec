// Package auth provides functionality for generating and parsing JSON Web Tokens (JWT)
// for session handling. The token subject is the authenticated email address;
// an identity row may not exist yet while the collector is still onboarding.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey is the key used to sign the JWT. It should be kept secure.
var secretKey = []byte("supersecretkey")

// TOKENEXP defines the token expiration duration.
const TOKENEXP = time.Hour * 24 * 7

// Claims represents the custom JWT claims carrying the authenticated email.
// It embeds jwt.RegisteredClaims for standard fields like expiration time.
type Claims struct {
	Email string
	jwt.RegisteredClaims
}

// GenerateToken creates a new session JWT for a verified email address.
// It sets the expiration time based on TOKENEXP and includes the email in the claims.
func GenerateToken(email string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TOKENEXP)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken validates the provided JWT token string and parses its claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
