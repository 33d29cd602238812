// Package token issues and validates the HS256 access/refresh token pair.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the custom claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims extends the registered JWT claims with the application's own fields.
// Role and CompanyID let middleware take RBAC decisions without touching the DB;
// the jti (RegisteredClaims.ID) is what the logout blacklist stores.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // "access" | "refresh"
}

// Pair bundles the two signed tokens returned on login/refresh.
type Pair struct {
	Access  string
	Refresh string
	// RefreshID is the jti of the refresh token, for later blacklisting.
	RefreshID string
	// RefreshExpiry is when the refresh token dies on its own.
	RefreshExpiry time.Time
}

// Generate signs a single token of the given type.
func Generate(secret, userID, companyID, role, issuer, tokenType string, expMinutes int) (string, error) {
	tok, _, _, err := generate(secret, userID, companyID, role, issuer, tokenType, expMinutes)
	return tok, err
}

func generate(secret, userID, companyID, role, issuer, tokenType string, expMinutes int) (string, string, time.Time, error) {
	if secret == "" {
		return "", "", time.Time{}, fmt.Errorf("token: empty secret")
	}
	now := time.Now()
	exp := now.Add(time.Duration(expMinutes) * time.Minute)
	jti := uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		TokenType: tokenType,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return signed, jti, exp, err
}

// GeneratePair signs an access/refresh pair for the user.
func GeneratePair(secret, userID, companyID, role, issuer string, accessMin, refreshMin int) (Pair, error) {
	access, _, _, err := generate(secret, userID, companyID, role, issuer, TypeAccess, accessMin)
	if err != nil {
		return Pair{}, err
	}
	refresh, jti, exp, err := generate(secret, userID, companyID, role, issuer, TypeRefresh, refreshMin)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh, RefreshID: jti, RefreshExpiry: exp}, nil
}

// Parse validates the token signature and expiry and returns its claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: empty secret")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("token: invalid claims")
	}
	return claims, nil
}
