package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "league-manager-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the JWT claims carried by issued tokens
type AuthClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and validates admin tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil || config.JWTSecret == "" {
		return nil, fmt.Errorf("auth service requires a configured JWT secret")
	}
	return &AuthService{config: config}, nil
}

// Login checks the credentials against the configured admins and returns
// a signed token on success
func (s *AuthService) Login(username, password string) (string, error) {
	for _, admin := range s.config.Admins {
		userMatch := subtle.ConstantTimeCompare([]byte(admin.Username), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(admin.Password), []byte(password)) == 1
		if userMatch && passMatch {
			return s.issueToken(username)
		}
	}
	return "", apperrors.NewAuthenticationError("invalid credentials")
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) issueToken(username string) (string, error) {
	ttl := time.Duration(s.config.TokenTTLHours) * time.Hour
	now := time.Now()
	claims := AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
