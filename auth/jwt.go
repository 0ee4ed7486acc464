package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries standard and custom claims for our tokens.
type Claims struct {
	Subject    string `json:"user_id"`
	Role       string `json:"role"`
	VendorID   string `json:"vendor_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	AdminID    string `json:"admin_id,omitempty"`
	AdminRole  string `json:"admin_role,omitempty"`
	jwt.RegisteredClaims
}

// SignJWT creates a signed JWT containing the role and profile identifiers.
func SignJWT(secret string, principal *Principal, ttl time.Duration) (string, error) {
	claims := Claims{
		Subject:    principal.Subject,
		Role:       principal.Role,
		VendorID:   principal.VendorID,
		CustomerID: principal.CustomerID,
		AdminID:    principal.AdminID,
		AdminRole:  principal.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "campusfood-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidate parses a token and validates signature and expiry.
func ParseAndValidate(secret string, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
