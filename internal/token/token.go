package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	UserTokenTTL  = 24 * time.Hour
	AdminTokenTTL = time.Hour

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Service signs and verifies the bearer tokens carried on protected routes.
// Tokens are self-contained: nothing is stored server-side and a token cannot
// be revoked before its expiry.
type Service struct {
	Secret []byte
}

// GenerateToken issues a standard user token valid for 24 hours.
func (s *Service) GenerateToken(userID uint, username string) (string, error) {
	return s.sign(userID, username, RoleUser, UserTokenTTL)
}

// GenerateAdminToken issues an admin token valid for 1 hour.
func (s *Service) GenerateAdminToken(adminID uint, username string) (string, error) {
	return s.sign(adminID, username, RoleAdmin, AdminTokenTTL)
}

func (s *Service) sign(id uint, username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      id,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Verify checks signature and expiry and returns the claims with the
// standard iat/exp/nbf fields stripped, so downstream handlers only ever see
// the principal fields.
func (s *Service) Verify(raw string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}

	delete(claims, "iat")
	delete(claims, "exp")
	delete(claims, "nbf")

	return claims, nil
}
