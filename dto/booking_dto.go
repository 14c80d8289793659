package dto

// CreateBookingRequest es el formulario de reserva tal como lo manda el
// cliente. El número de tarjeta y el CVV viajan acá pero NUNCA llegan al
// registro persistido: solo se derivan los últimos cuatro y la red.
// Cualquier total que venga del cliente se ignora y se recalcula.
type CreateBookingRequest struct {
	PropertyID string `json:"property_id"`

	// Datos de contacto
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Datos de pago (transitorios)
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`

	// Dirección de facturación
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// PriceBreakdown es la derivación de precios que se muestra en el
// resumen de orden y se recalcula al momento del submit.
type PriceBreakdown struct {
	BasePrice       float64 `json:"base_price"`
	DiscountApplied bool    `json:"discount_applied"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	DiscountedPrice float64 `json:"discounted_price"`
	BookingFee      float64 `json:"booking_fee"`
	TotalPrice      float64 `json:"total_price"`
}
