package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rentals-api/domain"
	"rentals-api/dto"
)

// ============================================
// MOCKS de los colaboradores de reservas
// ============================================

type mockBookingRepository struct {
	bookings []domain.Booking
	failNext bool
}

func (m *mockBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	if m.failNext {
		return errors.New("connection refused")
	}
	m.bookings = append([]domain.Booking{*booking}, m.bookings...)
	return nil
}

func (m *mockBookingRepository) List(_ context.Context, userID, propertyID string) ([]domain.Booking, error) {
	if m.failNext {
		return nil, errors.New("connection refused")
	}
	results := []domain.Booking{}
	for _, b := range m.bookings {
		if userID != "" && b.UserID != userID {
			continue
		}
		if propertyID != "" && b.PropertyID != propertyID {
			continue
		}
		results = append(results, b)
	}
	return results, nil
}

type mockPropertyRepository struct {
	properties map[string]domain.Property
}

func (m *mockPropertyRepository) GetByID(id string) (*domain.Property, error) {
	p, exists := m.properties[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *mockPropertyRepository) GetAll() []domain.Property {
	out := []domain.Property{}
	for _, p := range m.properties {
		out = append(out, p)
	}
	return out
}

type mockReviewRepository struct {
	reviews map[string][]domain.Review
	counts  map[string]int
}

func (m *mockReviewRepository) ListByProperty(propertyID string) []domain.Review {
	return m.reviews[propertyID]
}

func (m *mockReviewRepository) CountByProperty(propertyID string) int {
	if m.counts != nil {
		return m.counts[propertyID]
	}
	return len(m.reviews[propertyID])
}

type mockPublisher struct {
	published []string
	failNext  bool
}

func (m *mockPublisher) PublishBookingCreated(booking *domain.Booking) error {
	if m.failNext {
		return errors.New("channel closed")
	}
	m.published = append(m.published, booking.ID)
	return nil
}

// newBookingFixture arma el servicio con una propiedad de 300 con 20% de
// descuento: total esperado = 300*0.8 + 25 = 265.00
func newBookingFixture() (BookingService, *mockBookingRepository, *mockPublisher) {
	bookingRepo := &mockBookingRepository{}
	propertyRepo := &mockPropertyRepository{
		properties: map[string]domain.Property{
			"42": {
				ID:       "42",
				Name:     "Test Villa",
				Image:    "/images/test-villa.jpg",
				Price:    300,
				Discount: "20",
				Rating:   4.9,
			},
		},
	}
	reviewRepo := &mockReviewRepository{counts: map[string]int{"42": 7}}
	publisher := &mockPublisher{}

	service := NewBookingService(bookingRepo, propertyRepo, reviewRepo, publisher)
	return service, bookingRepo, publisher
}

// validBookingRequest es un formulario completo para la propiedad 42
func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PropertyID: "42",
		FirstName:  "Laloo",
		LastName:   "Hailu",
		Email:      "laloo@example.com",
		Phone:      "+1 (555) 123-4567",
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/25",
		CVV:        "123",
		Street:     "123 Main St",
		City:       "New York",
		State:      "NY",
		ZipCode:    "10001",
		Country:    "United States",
	}
}

// ============================================
// TESTS de la derivación de precios
// ============================================

// Test: base 200 con descuento "10" -> 180.00 con descuento, total 205.00
func TestComputePricing_WithDiscount(t *testing.T) {
	breakdown := ComputePricing(200, "10")

	if !breakdown.DiscountApplied {
		t.Error("Expected discount applied")
	}
	if breakdown.DiscountedPrice != 180.00 {
		t.Errorf("Expected discounted price 180.00, got %.2f", breakdown.DiscountedPrice)
	}
	if breakdown.BookingFee != 25.00 {
		t.Errorf("Expected booking fee 25.00, got %.2f", breakdown.BookingFee)
	}
	if breakdown.TotalPrice != 205.00 {
		t.Errorf("Expected total 205.00, got %.2f", breakdown.TotalPrice)
	}
}

// Test: sin descuento, base 150 -> 150.00, total 175.00
func TestComputePricing_NoDiscount(t *testing.T) {
	breakdown := ComputePricing(150, "")

	if breakdown.DiscountApplied {
		t.Error("Expected no discount applied for empty discount")
	}
	if breakdown.DiscountedPrice != 150.00 {
		t.Errorf("Expected discounted price 150.00, got %.2f", breakdown.DiscountedPrice)
	}
	if breakdown.TotalPrice != 175.00 {
		t.Errorf("Expected total 175.00, got %.2f", breakdown.TotalPrice)
	}
}

// Test: descuento "0" SÍ cuenta como descuento aplicado (solo cambia
// la presentación), pero no cambia el precio
func TestComputePricing_ZeroVsEmpty(t *testing.T) {
	zero := ComputePricing(100, "0")
	empty := ComputePricing(100, "")

	if !zero.DiscountApplied {
		t.Error(`Expected "0" discount marked as applied`)
	}
	if empty.DiscountApplied {
		t.Error("Expected empty discount marked as not applied")
	}
	if zero.DiscountedPrice != empty.DiscountedPrice {
		t.Error("Expected same price for 0% and absent discount")
	}
}

// Test: descuentos fuera de [0,100] se clampean
func TestComputePricing_ClampsOutOfRange(t *testing.T) {
	negative := ComputePricing(100, "-50")
	if negative.DiscountedPrice != 100 {
		t.Errorf("Expected negative discount clamped to 0%%, got %.2f", negative.DiscountedPrice)
	}

	over := ComputePricing(100, "150")
	if over.DiscountedPrice != 0 {
		t.Errorf("Expected >100 discount clamped to 100%%, got %.2f", over.DiscountedPrice)
	}
	if over.TotalPrice != 25 {
		t.Errorf("Expected total = fee only, got %.2f", over.TotalPrice)
	}
}

// ============================================
// TESTS del submit
// ============================================

// Test: submit exitoso arma el registro con precios recalculados del
// catálogo, sin importar lo que diga el cliente (resistencia a tampering)
func TestSubmitBooking_Success(t *testing.T) {
	service, repo, publisher := newBookingFixture()

	booking, err := service.SubmitBooking(context.Background(), validBookingRequest(), "usr_abc123def")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if booking == nil {
		t.Fatal("Expected booking record, got nil")
	}

	// Precios recalculados: 300 * 0.8 + 25 = 265.00
	if booking.Price != 240.00 {
		t.Errorf("Expected discounted price 240.00, got %.2f", booking.Price)
	}
	if booking.TotalPrice != 265.00 {
		t.Errorf("Expected total 265.00, got %.2f", booking.TotalPrice)
	}
	if booking.TotalPrice != booking.Price+booking.BookingFee {
		t.Error("Invariant violated: total != price + fee")
	}

	// Identidad y contexto de la propiedad
	if booking.UserID != "usr_abc123def" {
		t.Errorf("Expected user id from caller, got %q", booking.UserID)
	}
	if booking.UserName != "Laloo Hailu" {
		t.Errorf("Expected display name from form, got %q", booking.UserName)
	}
	if booking.PropertyName != "Test Villa" {
		t.Errorf("Expected property name carried through, got %q", booking.PropertyName)
	}
	if booking.Rating != 4.9 || booking.Reviews != 7 {
		t.Errorf("Expected rating/reviews carried through, got %.1f/%d", booking.Rating, booking.Reviews)
	}
	if booking.Status != domain.BookingStatusConfirmed {
		t.Errorf("Expected confirmed status, got %q", booking.Status)
	}
	if !strings.HasPrefix(booking.BookingNumber, "BK") {
		t.Errorf("Expected BK booking number, got %q", booking.BookingNumber)
	}
	if booking.BookedAt.IsZero() {
		t.Error("Expected creation timestamp set")
	}

	// Del número de tarjeta solo sobreviven los últimos cuatro y la red
	if booking.PaymentInfo.CardLastFour != "1111" {
		t.Errorf("Expected last four 1111, got %q", booking.PaymentInfo.CardLastFour)
	}
	if booking.PaymentInfo.CardType != "Visa" {
		t.Errorf("Expected Visa, got %q", booking.PaymentInfo.CardType)
	}

	// Persistido y publicado
	if len(repo.bookings) != 1 {
		t.Errorf("Expected one persisted booking, got %d", len(repo.bookings))
	}
	if len(publisher.published) != 1 {
		t.Errorf("Expected one published event, got %d", len(publisher.published))
	}
}

// Test: campos faltantes fallan con ErrValidation sin tocar persistencia
func TestSubmitBooking_MissingFields(t *testing.T) {
	service, repo, _ := newBookingFixture()

	req := validBookingRequest()
	req.CardNumber = ""
	req.City = ""

	_, err := service.SubmitBooking(context.Background(), req, "usr_abc123def")

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "card_number") || !strings.Contains(err.Error(), "city") {
		t.Errorf("Expected missing fields named in error, got %q", err.Error())
	}
	if len(repo.bookings) != 0 {
		t.Error("Expected nothing persisted on validation failure")
	}
}

// Test: propiedad inexistente falla con ErrNotFound
func TestSubmitBooking_PropertyNotFound(t *testing.T) {
	service, _, _ := newBookingFixture()

	req := validBookingRequest()
	req.PropertyID = "999"

	_, err := service.SubmitBooking(context.Background(), req, "usr_abc123def")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// Test: falla del colaborador de persistencia se colapsa en ErrSubmission
// y no se publica ningún evento
func TestSubmitBooking_RepositoryFailure(t *testing.T) {
	service, repo, publisher := newBookingFixture()
	repo.failNext = true

	_, err := service.SubmitBooking(context.Background(), validBookingRequest(), "usr_abc123def")

	if !errors.Is(err, domain.ErrSubmission) {
		t.Errorf("Expected ErrSubmission, got %v", err)
	}
	if len(publisher.published) != 0 {
		t.Error("Expected no event published on submission failure")
	}
}

// Test: una falla del publisher NO voltea la reserva
func TestSubmitBooking_PublisherFailureIgnored(t *testing.T) {
	service, repo, publisher := newBookingFixture()
	publisher.failNext = true

	booking, err := service.SubmitBooking(context.Background(), validBookingRequest(), "usr_abc123def")

	if err != nil {
		t.Fatalf("Expected booking to succeed despite publisher failure, got %v", err)
	}
	if booking == nil || len(repo.bookings) != 1 {
		t.Error("Expected booking persisted")
	}
}

// ============================================
// TESTS del listado
// ============================================

// Test: el listado filtra por usuario y por propiedad
func TestListBookings_Filters(t *testing.T) {
	service, _, _ := newBookingFixture()
	ctx := context.Background()

	if _, err := service.SubmitBooking(ctx, validBookingRequest(), "usr_one"); err != nil {
		t.Fatalf("Setup booking failed: %v", err)
	}
	if _, err := service.SubmitBooking(ctx, validBookingRequest(), "usr_two"); err != nil {
		t.Fatalf("Setup booking failed: %v", err)
	}

	all, err := service.ListBookings(ctx, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 bookings, got %d", len(all))
	}

	mine, err := service.ListBookings(ctx, "usr_one", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "usr_one" {
		t.Errorf("Expected only usr_one bookings, got %+v", mine)
	}

	none, err := service.ListBookings(ctx, "usr_one", "999")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no bookings for other property, got %d", len(none))
	}
}

// Test: GetPricing sobre una propiedad del catálogo
func TestGetPricing(t *testing.T) {
	service, _, _ := newBookingFixture()

	breakdown, err := service.GetPricing("42")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if breakdown.TotalPrice != 265.00 {
		t.Errorf("Expected total 265.00, got %.2f", breakdown.TotalPrice)
	}

	if _, err := service.GetPricing("999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown property, got %v", err)
	}
}
