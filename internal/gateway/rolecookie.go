package gateway

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
)

// RoleClaims is the payload of the signed role cookie.
type RoleClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// SignRole issues an HS256 token carrying role, valid for ttl.
func SignRole(role session.Role, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RoleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Role: string(role),
	})
	return token.SignedString(secret)
}

// RoleFromToken verifies a role cookie. Any failure, including expiry, an
// unknown role or a foreign signing method, is common.ErrInvalidToken.
func RoleFromToken(tokenString string, secret []byte) (session.Role, error) {
	claims := &RoleClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	role, ok := session.ParseRole(claims.Role)
	if !ok {
		return "", common.ErrInvalidToken
	}
	return role, nil
}
