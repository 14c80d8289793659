package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Esta es la "llave secreta" para firmar los tokens
// En producción debe estar en variables de entorno
var jwtSecret = []byte(getJWTSecret())

// Claims es la estructura de los datos que guardamos EN el token.
// Los invitados también reciben token, con is_guest en true.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsGuest bool   `json:"is_guest"`
	jwt.RegisteredClaims
}

// getJWTSecret obtiene el secret desde variables de entorno
// Si no existe, usa uno por defecto (solo para desarrollo)
func getJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-change-in-production"
	}
	return secret
}

// GenerateToken genera un nuevo JWT token para un usuario
// Se llama después del sign-in, sign-up o continuación como invitado
func GenerateToken(userID, email string, isGuest bool) (string, error) {
	// El token expira en 24 horas
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsGuest: isGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken valida un JWT token y retorna los claims
// Se usa en el middleware para verificar que el usuario esté autenticado
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
