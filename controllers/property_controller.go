package controllers

import (
	"net/http"

	"rentals-api/dto"
	"rentals-api/services"

	"github.com/gin-gonic/gin"
)

// PropertyController maneja los endpoints HTTP del catálogo
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController crea una nueva instancia del controlador
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// SearchProperties maneja GET /properties
// Filtros por query string: location, category, min_price, max_price, sort_by
func (ctrl *PropertyController) SearchProperties(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.Search(req)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPropertyByID maneja GET /properties/:id
func (ctrl *PropertyController) GetPropertyByID(c *gin.Context) {
	property, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Property retrieved successfully",
		Data:    property,
	})
}
