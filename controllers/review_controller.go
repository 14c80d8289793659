package controllers

import (
	"net/http"

	"rentals-api/dto"
	"rentals-api/services"

	"github.com/gin-gonic/gin"
)

// ReviewController maneja los endpoints HTTP de reseñas
type ReviewController struct {
	service services.ReviewService
}

// NewReviewController crea una nueva instancia del controlador
func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetReviews maneja GET /reviews?property_id=...
// Propiedad sin reseñas devuelve lista vacía con promedio 0, no error
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	propertyID := c.Query("property_id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "property_id is required",
		})
		return
	}

	c.JSON(http.StatusOK, ctrl.service.ListByProperty(propertyID))
}
