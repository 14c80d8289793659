package repositories

import (
	"sync"

	"rentals-api/domain"
)

// PropertyRepository es el catálogo de propiedades: una colección fija
// en memoria sobre la que se filtra linealmente.
type PropertyRepository interface {
	GetByID(id string) (*domain.Property, error)
	GetAll() []domain.Property
}

// propertyRepository implementa PropertyRepository con datos seed
type propertyRepository struct {
	mu         sync.RWMutex
	properties []domain.Property
}

// NewPropertyRepository crea el catálogo con los datos de demo
func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{properties: seedProperties()}
}

// GetByID busca una propiedad por su ID
func (r *propertyRepository) GetByID(id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.properties {
		if p.ID == id {
			property := p
			return &property, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetAll devuelve una copia de todo el catálogo
func (r *propertyRepository) GetAll() []domain.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Property, len(r.properties))
	copy(out, r.properties)
	return out
}

// seedProperties son las propiedades de demo del catálogo
func seedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:          "1",
			Name:        "Luxury Beach Villa",
			Description: "Beautiful beachfront villa with stunning ocean views and modern amenities.",
			Address: domain.Address{
				State:   "California",
				City:    "Malibu",
				Country: "USA",
			},
			Rating:   4.8,
			Category: []string{"Beach", "Luxury", "Villa"},
			Price:    450,
			Offers: domain.Offers{
				Bed:       "2",
				Shower:    "2",
				Occupants: "4",
			},
			Image:    "/images/beach-villa.jpg",
			Discount: "10",
		},
		{
			ID:          "2",
			Name:        "Downtown Modern Apartment",
			Description: "Stylish apartment in the heart of the city with easy access to attractions.",
			Address: domain.Address{
				State:   "New York",
				City:    "Manhattan",
				Country: "USA",
			},
			Rating:   4.5,
			Category: []string{"Apartment", "City", "Modern"},
			Price:    200,
			Offers: domain.Offers{
				Bed:       "1",
				Shower:    "1",
				Occupants: "2",
			},
			Image:    "/images/downtown-apartment.jpg",
			Discount: "5",
		},
		{
			ID:          "3",
			Name:        "Mountain Cabin Retreat",
			Description: "Cozy cabin nestled in the mountains perfect for nature lovers.",
			Address: domain.Address{
				State:   "Colorado",
				City:    "Aspen",
				Country: "USA",
			},
			Rating:   4.7,
			Category: []string{"Cabin", "Mountain", "Nature"},
			Price:    180,
			Offers: domain.Offers{
				Bed:       "3",
				Shower:    "2",
				Occupants: "6",
			},
			Image:    "/images/mountain-cabin.jpg",
			Discount: "15",
		},
	}
}
