package controllers

import (
	"net/http"

	"rentals-api/dto"
	"rentals-api/services"

	"github.com/gin-gonic/gin"
)

// BookingController maneja los endpoints HTTP de reservas
type BookingController struct {
	service services.BookingService
}

// NewBookingController crea una nueva instancia del controlador
func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// CreateBooking maneja POST /bookings (protegido por JWT)
// El user id sale del token; los totales del body se ignoran y se
// recalculan en el servidor.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. Identidad del usuario actual, puesta por el middleware
	userID := c.GetString("user_id")

	// 3. Enviar la reserva. El resultado vuelve como (registro, error):
	// en fallo el cliente retiene su formulario y puede reintentar.
	booking, err := ctrl.service.SubmitBooking(c.Request.Context(), req, userID)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	// 4. Confirmación con el registro creado
	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Booking created successfully",
		Data:    booking,
	})
}

// GetBookings maneja GET /bookings (protegido por JWT)
// Filtros opcionales: user_id y property_id
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	userID := c.Query("user_id")
	propertyID := c.Query("property_id")

	bookings, err := ctrl.service.ListBookings(c.Request.Context(), userID, propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// GetPricing maneja GET /properties/:id/pricing
// Devuelve el desglose de precios que muestra el resumen de orden
func (ctrl *BookingController) GetPricing(c *gin.Context) {
	breakdown, err := ctrl.service.GetPricing(c.Param("id"))
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
