// Package jwt issues and verifies the bearer tokens used by both the
// back-office (role admin/editor) and the B2B portal (role b2b, carrying
// the tier and discount claims the storefront consumes).
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the token.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleB2B    = "b2b"
)

// Claims are the registered JWT claims plus the application's own.
// For B2B tokens Tier and DiscountPercent are set so the catalog can price
// without a database round trip.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID       string `json:"subject_id"` // user or company ID
	Role            string `json:"role"`
	Tier            string `json:"tier,omitempty"`
	DiscountPercent string `json:"discount_percent,omitempty"`
}

// Generate signs a token for the given claims.
func Generate(secret, subjectID, role, tier, discountPercent, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		SubjectID:       subjectID,
		Role:            role,
		Tier:            tier,
		DiscountPercent: discountPercent,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the claims.
func Parse(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: parse: %w", err)
	}
	if !token.Valid || claims.SubjectID == "" {
		return nil, errors.New("jwt: invalid token")
	}
	return claims, nil
}
