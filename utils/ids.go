package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID genera un token aleatorio base-36 de 9 caracteres con el
// prefijo dado. Ejemplos: "usr_k3j9x0a2b", "guest_8f0a1b2c3".
// Alcanza para un store de demo: no se requiere unicidad criptográfica.
func GenerateID(prefix string) string {
	token := make([]byte, 9)
	for i := range token {
		token[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + "_" + string(token)
}

// GenerateBookingNumber genera el número visible de reserva.
// Formato: "BK" + últimos 8 dígitos del timestamp en milisegundos.
func GenerateBookingNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "BK" + millis
}
