package utils

import "strings"

// Helpers puros de formateo de campos de pago. Son presentación:
// el número completo de tarjeta y el CVV existen solo transitoriamente
// en el formulario y nunca se persisten.

// cleanDigits elimina todo lo que no sea dígito
func cleanDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// FormatCardNumber agrupa el número de tarjeta en bloques de 4 dígitos
// separados por espacio, con un máximo usable de 16 dígitos.
// "4111111111111111" -> "4111 1111 1111 1111".
// Si todavía no hay al menos 4 dígitos, devuelve el valor tal como vino.
func FormatCardNumber(value string) string {
	digits := cleanDigits(value)
	if len(digits) < 4 {
		return value
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiryDate inserta la "/" después del segundo dígito en cuanto
// aparece un tercero, con tope de 4 dígitos (MM/YY).
// "1225" tipeado progresivamente -> "12/25".
func FormatExpiryDate(value string) string {
	digits := cleanDigits(value)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) == 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// DetectCardType detecta la red de la tarjeta por prefijo, en orden:
// 4 -> Visa; 51-55 -> Mastercard; 34/37 -> American Express;
// 6011/65 -> Discover; cualquier otra cosa -> Unknown.
func DetectCardType(cardNumber string) string {
	digits := cleanDigits(cardNumber)

	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "Mastercard"
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6011") || strings.HasPrefix(digits, "65"):
		return "Discover"
	default:
		return "Unknown"
	}
}

// CardLastFour devuelve los últimos cuatro dígitos del número de tarjeta,
// ignorando espacios de formateo. Es lo único del número que se retiene.
func CardLastFour(cardNumber string) string {
	digits := cleanDigits(cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
