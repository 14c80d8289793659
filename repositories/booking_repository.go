package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"rentals-api/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository es el colaborador de persistencia de reservas:
// create(record) más el listado filtrado por usuario y/o propiedad.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context, userID, propertyID string) ([]domain.Booking, error)
}

// bookingRepository implementa BookingRepository sobre MongoDB
type bookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository crea una nueva instancia del repositorio de reservas
func NewBookingRepository(client *mongo.Client, database string) BookingRepository {
	collection := client.Database(database).Collection("bookings")
	log.Printf("Booking repository initialized with MongoDB database=%s", database)
	return &bookingRepository{collection: collection}
}

// Create inserta la reserva en la colección "bookings"
func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	log.Printf("Booking created: id=%s, number=%s, user=%s", booking.ID, booking.BookingNumber, booking.UserID)
	return nil
}

// List devuelve las reservas, opcionalmente filtradas por userID y/o
// propertyID. Las más recientes primero, igual que el unshift del mock
// original.
func (r *bookingRepository) List(ctx context.Context, userID, propertyID string) ([]domain.Booking, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if propertyID != "" {
		filter["property_id"] = propertyID
	}

	opts := options.Find().SetSort(bson.D{{Key: "booked_at", Value: -1}})

	queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(queryCtx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(queryCtx)

	bookings := []domain.Booking{}
	if err := cursor.All(queryCtx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	return bookings, nil
}
