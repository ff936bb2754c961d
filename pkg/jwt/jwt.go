package jwt

import (
	"errors"
	"fmt"
	"time"

	"gamebeats/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is carried by tokens allowed to modify the catalog.
const RoleAdmin = "admin"

// DefaultTTL is the lifetime of tokens issued by the login endpoint.
const DefaultTTL = 24 * time.Hour

var ErrNoSecret = errors.New("jwt secret is not configured")

// Claims is the payload of an issued token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	if config.AppConfig == nil || config.AppConfig.JWTSecret == "" {
		return nil, ErrNoSecret
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken creates a signed token for subject with the given role.
func GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken verifies the signature and expiry of tokenString.
func ParseToken(tokenString string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
