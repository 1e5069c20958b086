package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredential = errors.New("invalid credential")

// Verifier проверяет bearer-токены внешнего identity-провайдера
// и возвращает подтвержденный email принципала.
type Verifier struct {
	secret []byte
}

func New(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
	}
}

func (v *Verifier) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredential
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidCredential
	}

	return email, nil
}
