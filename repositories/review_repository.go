package repositories

import (
	"sync"

	"rentals-api/domain"
)

// ReviewRepository es la colección mock de reseñas (solo lectura)
type ReviewRepository interface {
	ListByProperty(propertyID string) []domain.Review
	CountByProperty(propertyID string) int
}

// reviewRepository implementa ReviewRepository con datos seed en memoria
type reviewRepository struct {
	mu      sync.RWMutex
	reviews map[string][]domain.Review // propertyID -> reseñas
}

// NewReviewRepository crea la colección de reseñas de demo
func NewReviewRepository() ReviewRepository {
	return &reviewRepository{reviews: seedReviews()}
}

// ListByProperty devuelve las reseñas de una propiedad.
// Propiedad sin reseñas devuelve lista vacía, no error.
func (r *reviewRepository) ListByProperty(propertyID string) []domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := r.reviews[propertyID]
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out
}

// CountByProperty devuelve cuántas reseñas tiene una propiedad
func (r *reviewRepository) CountByProperty(propertyID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reviews[propertyID])
}

// seedReviews son las reseñas de demo
func seedReviews() map[string][]domain.Review {
	return map[string][]domain.Review{
		"1": {
			{
				ID:         "1",
				PropertyID: "1",
				UserID:     "user1",
				UserName:   "Ebisa M.",
				Rating:     5,
				Comment:    "Amazing villa with breathtaking ocean views! The pool was fantastic and the staff were incredibly helpful. Would definitely stay again!",
				Date:       "2025-10-15",
			},
			{
				ID:         "2",
				PropertyID: "1",
				UserID:     "user2",
				UserName:   "Laloo D.",
				Rating:     4,
				Comment:    "Great location and amenities. The villa was clean and well-maintained. The only downside was the wifi was a bit slow.",
				Date:       "2025-11-10",
			},
		},
		"2": {
			{
				ID:         "3",
				PropertyID: "2",
				UserID:     "user3",
				UserName:   "Michael R.",
				Rating:     5,
				Comment:    "Perfect mountain getaway! The fireplace was so cozy and the views were incredible. Very peaceful and relaxing.",
				Date:       "2024-01-08",
			},
		},
	}
}
