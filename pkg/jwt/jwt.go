package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired se reexporta para que los consumidores distingan expiración de malformación
// sin importar golang-jwt directamente.
var ErrExpired = jwt.ErrTokenExpired

// Claims incluye los claims estándar JWT más la identidad de la aplicación.
// Role y Email viajan en el token para que los gates decidan sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "admin" | "coordinador" | "auxiliar"
	Email  string `json:"email"`
}

// Identity es la identidad autenticada extraída de un token válido.
type Identity struct {
	UserID string
	Role   string
	Email  string
}

// Generate genera un token JWT firmado HS256 que incluye userID, role y email.
func Generate(secret, userID, role, email, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID: userID,
		Role:   role,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y vigencia del token y devuelve la identidad.
// Si el token está expirado, el error envuelve ErrExpired; cualquier otra falla
// de verificación se reporta como token malformado.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Identity{UserID: claims.UserID, Role: claims.Role, Email: claims.Email}, nil
}
