package devserver

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// HS256でアクセストークンを発行する。
// クライアントのSessionStoreはemailクレームを読むので必ず入れる。
type JWTIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{
		secret:    []byte(secret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *JWTIssuer) Issue(userID string, email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.accessTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}
