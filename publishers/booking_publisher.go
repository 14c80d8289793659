package publishers

import (
	"encoding/json"
	"fmt"
	"log"

	"rentals-api/domain"

	"github.com/streadway/amqp"
)

// BookingMessage es el mensaje que se publica al crearse una reserva
type BookingMessage struct {
	Action        string  `json:"action"` // "create"
	BookingID     string  `json:"booking_id"`
	BookingNumber string  `json:"booking_number"`
	UserID        string  `json:"user_id"`
	PropertyID    string  `json:"property_id"`
	TotalPrice    float64 `json:"total_price"`
}

// RabbitMQPublisher publica eventos de reservas en RabbitMQ
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher crea una nueva instancia de RabbitMQPublisher
func NewRabbitMQPublisher(rabbitURL, queueName string) (*RabbitMQPublisher, error) {
	log.Printf("Connecting to RabbitMQ at %s", rabbitURL)

	// Conectar con RabbitMQ
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	log.Printf("Successfully connected to RabbitMQ")

	// Crear channel
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declarar la queue
	if queueName == "" {
		queueName = "bookings_queue"
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("Queue '%s' declared successfully", queueName)

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishBookingCreated publica el evento de reserva creada
func (p *RabbitMQPublisher) PublishBookingCreated(booking *domain.Booking) error {
	message := BookingMessage{
		Action:        "create",
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		UserID:        booking.UserID,
		PropertyID:    booking.PropertyID,
		TotalPrice:    booking.TotalPrice,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal booking message: %w", err)
	}

	err = p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish booking message: %w", err)
	}

	log.Printf("Booking event published: booking=%s, queue=%s", booking.ID, p.queueName)
	return nil
}

// Close cierra el channel y la conexión
func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.connection != nil {
		p.connection.Close()
	}
}
