package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "ROOMFINDER"
	}
	return secret
}

// TokenClaims carries the identity fields the dashboard gates on.
type TokenClaims struct {
	UserID         string
	Role           string
	ApprovalStatus string
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractClaimsFromToken extracts the user ID, role and host approval status
// from a valid JWT token string.
func ExtractClaimsFromToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &TokenClaims{UserID: sub}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if status, ok := claims["approvalStatus"].(string); ok {
		out.ApprovalStatus = status
	}
	return out, nil
}
