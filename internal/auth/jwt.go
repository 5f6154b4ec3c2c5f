package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for expired, malformed, or wrongly
// signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated identity inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Nickname string `json:"nickname"`
}

// GenerateToken mints an HS256 token for the given user.
func GenerateToken(userID, nickname string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID:   userID,
		Nickname: nickname,
	})

	return token.SignedString(secret)
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
