package dto

import "rentals-api/domain"

// SearchRequest son los filtros de búsqueda del catálogo.
// El filtrado es un predicado lineal sobre la lista fija de propiedades.
type SearchRequest struct {
	Location string  `form:"location"`
	Category string  `form:"category"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	SortBy   string  `form:"sort_by"` // "price" o "rating"
}

// SearchResponse es el resultado de una búsqueda
type SearchResponse struct {
	Results []domain.Property `json:"results"`
	Total   int               `json:"total"`
}

// ReviewsResponse es la respuesta de GET /reviews
type ReviewsResponse struct {
	Success       bool            `json:"success"`
	Data          []domain.Review `json:"data"`
	Total         int             `json:"total"`
	AverageRating float64         `json:"average_rating"`
}
