package services

import (
	"math"

	"rentals-api/dto"
	"rentals-api/repositories"
)

// ReviewService lista reseñas y calcula el rating promedio
type ReviewService interface {
	ListByProperty(propertyID string) *dto.ReviewsResponse
}

// reviewService implementa ReviewService
type reviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService crea una nueva instancia del servicio
func NewReviewService(repo repositories.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

// ListByProperty devuelve las reseñas de una propiedad con el promedio
// redondeado a un decimal. Sin reseñas, el promedio es 0.
func (s *reviewService) ListByProperty(propertyID string) *dto.ReviewsResponse {
	reviews := s.repo.ListByProperty(propertyID)

	average := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		average = float64(sum) / float64(len(reviews))
		average = math.Round(average*10) / 10
	}

	return &dto.ReviewsResponse{
		Success:       true,
		Data:          reviews,
		Total:         len(reviews),
		AverageRating: average,
	}
}
