package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"rentals-api/domain"
	"rentals-api/dto"
	"rentals-api/repositories"
	"rentals-api/utils"
)

// BookingFee es el fee fijo de reserva que se suma al precio con descuento
const BookingFee = 25.0

// BookingPublisher emite el evento de reserva creada. El publish es
// best-effort: una falla se loguea pero no voltea la reserva.
type BookingPublisher interface {
	PublishBookingCreated(booking *domain.Booking) error
}

// BookingService arma la derivación de precios, valida el formulario y
// envía la reserva al colaborador de persistencia.
type BookingService interface {
	GetPricing(propertyID string) (*dto.PriceBreakdown, error)
	SubmitBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID, propertyID string) ([]domain.Booking, error)
}

// bookingService es la implementación real del servicio
type bookingService struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	reviewRepo   repositories.ReviewRepository
	publisher    BookingPublisher
}

// NewBookingService crea una nueva instancia del servicio.
// El publisher puede ser nil (por ejemplo en tests).
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	reviewRepo repositories.ReviewRepository,
	publisher BookingPublisher,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		reviewRepo:   reviewRepo,
		publisher:    publisher,
	}
}

// ComputePricing es la derivación pura de precios:
//
//	discounted = base * (1 - pct/100)   si hay descuento
//	total      = discounted + BookingFee
//
// Descuento vacío significa SIN descuento (DiscountApplied=false), que no
// es lo mismo que 0%. Valores fuera de [0,100] se clampean: así el
// invariante discounted ∈ [0, base] se sostiene incluso con datos de
// catálogo rotos.
func ComputePricing(basePrice float64, discount string) dto.PriceBreakdown {
	breakdown := dto.PriceBreakdown{
		BasePrice:       basePrice,
		DiscountedPrice: basePrice,
		BookingFee:      BookingFee,
	}

	if discount != "" {
		pct, err := strconv.ParseFloat(discount, 64)
		if err == nil {
			if pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			breakdown.DiscountApplied = true
			breakdown.DiscountPercent = pct
			breakdown.DiscountedPrice = basePrice * (1 - pct/100)
		}
	}

	breakdown.TotalPrice = breakdown.DiscountedPrice + breakdown.BookingFee
	return breakdown
}

// GetPricing devuelve el desglose de precios de una propiedad del catálogo
func (s *bookingService) GetPricing(propertyID string) (*dto.PriceBreakdown, error) {
	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, propertyID)
	}
	breakdown := ComputePricing(property.Price, property.Discount)
	return &breakdown, nil
}

// requiredBookingFields valida presencia de todos los campos del
// formulario. Devuelve la lista de los que faltan.
func requiredBookingFields(req dto.CreateBookingRequest) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"property_id", req.PropertyID},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"card_number", req.CardNumber},
		{"expiry_date", req.ExpiryDate},
		{"cvv", req.CVV},
		{"street", req.Street},
		{"city", req.City},
		{"state", req.State},
		{"zip_code", req.ZipCode},
		{"country", req.Country},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// SubmitBooking valida el formulario, recalcula los precios desde el
// catálogo (nunca desde valores que vinieron del cliente), arma el
// registro y lo manda a persistencia. Devuelve el registro creado o el
// error: el caller decide cómo reaccionar, sin callbacks.
func (s *bookingService) SubmitBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*domain.Booking, error) {
	// 1. Validar campos requeridos antes de cualquier llamada remota
	if missing := requiredBookingFields(req); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required booking fields: %s",
			domain.ErrValidation, strings.Join(missing, ", "))
	}

	// 2. Buscar la propiedad autoritativa
	property, err := s.propertyRepo.GetByID(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, req.PropertyID)
	}

	// 3. Recalcular el desglose de precios al momento del submit
	pricing := ComputePricing(property.Price, property.Discount)

	// 4. Armar el registro. Del número de tarjeta solo sobreviven los
	// últimos cuatro dígitos y la red; el CVV se descarta directamente.
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            utils.GenerateID("bkg"),
		BookingNumber: utils.GenerateBookingNumber(now),
		UserID:        userID,
		UserName:      req.FirstName + " " + req.LastName,
		UserEmail:     req.Email,
		UserPhone:     req.Phone,
		PropertyID:    property.ID,
		PropertyName:  property.Name,
		PropertyImage: property.Image,
		Price:         pricing.DiscountedPrice,
		BookingFee:    pricing.BookingFee,
		TotalPrice:    pricing.TotalPrice,
		Rating:        property.Rating,
		Reviews:       s.reviewRepo.CountByProperty(property.ID),
		Status:        domain.BookingStatusConfirmed,
		BillingAddress: domain.BillingAddress{
			Street:  req.Street,
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
			Country: req.Country,
		},
		PaymentInfo: domain.PaymentInfo{
			CardLastFour: utils.CardLastFour(req.CardNumber),
			CardType:     utils.DetectCardType(req.CardNumber),
		},
		BookedAt: now,
	}

	// 5. Enviar al colaborador de persistencia. Cualquier falla de
	// transporte o de store se colapsa en ErrSubmission; el caller retiene
	// su formulario y puede reintentar.
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmission, err)
	}

	// 6. Publicar el evento de reserva creada (best-effort)
	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(booking); err != nil {
			log.Printf("Error publishing booking created event: booking=%s, error=%v", booking.ID, err)
		}
	}

	return booking, nil
}

// ListBookings devuelve las reservas filtradas por usuario y/o propiedad
func (s *bookingService) ListBookings(ctx context.Context, userID, propertyID string) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx, userID, propertyID)
}
