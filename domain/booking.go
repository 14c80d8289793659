package domain

import "time"

// BookingStatus define los estados posibles de una reserva
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// BillingAddress es la dirección de facturación de la reserva
type BillingAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zip_code" json:"zip_code"`
	Country string `bson:"country" json:"country"`
}

// PaymentInfo es el resumen de pago que SÍ se persiste.
// Nunca guardamos el número completo de tarjeta ni el CVV:
// solo los últimos cuatro dígitos y la red detectada.
type PaymentInfo struct {
	CardLastFour string `bson:"card_last_four" json:"card_last_four"`
	CardType     string `bson:"card_type" json:"card_type"`
}

// Booking es el registro final de una reserva enviada a persistencia.
// Invariante: TotalPrice = Price + BookingFee, siempre, recalculado en el
// servidor a partir del precio/descuento de la propiedad (nunca se confía
// en totales que vienen del cliente).
type Booking struct {
	ID             string         `bson:"_id" json:"id"`
	BookingNumber  string         `bson:"booking_number" json:"booking_number"`
	UserID         string         `bson:"user_id" json:"user_id"`
	UserName       string         `bson:"user_name" json:"user_name"`
	UserEmail      string         `bson:"user_email" json:"user_email"`
	UserPhone      string         `bson:"user_phone" json:"user_phone"`
	PropertyID     string         `bson:"property_id" json:"property_id"`
	PropertyName   string         `bson:"property_name" json:"property_name"`
	PropertyImage  string         `bson:"property_image" json:"property_image"`
	Price          float64        `bson:"price" json:"price"`
	BookingFee     float64        `bson:"booking_fee" json:"booking_fee"`
	TotalPrice     float64        `bson:"total_price" json:"total_price"`
	Rating         float64        `bson:"rating" json:"rating"`
	Reviews        int            `bson:"reviews" json:"reviews"`
	Status         BookingStatus  `bson:"status" json:"status"`
	BillingAddress BillingAddress `bson:"billing_address" json:"billing_address"`
	PaymentInfo    PaymentInfo    `bson:"payment_info" json:"payment_info"`
	BookedAt       time.Time      `bson:"booked_at" json:"booked_at"`
}
