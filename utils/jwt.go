package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret injeta o segredo de assinatura no boot. Sem fallback
// compilado: o main falha antes de chegar aqui se JWT_SECRET faltar.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// AuthClaims carrega apenas o id do usuário; cargo e e-mail são relidos do
// banco a cada requisição, então tokens de usuários desativados morrem junto.
type AuthClaims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken emite um token assinado com validade de 24 horas.
func GenerateToken(userID uint) (string, error) {
	claims := &AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "barfesta-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, errors.New("token inválido ou expirado")
	}
	return claims, nil
}
