package services

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
	"time"

	"rentals-api/domain"
	"rentals-api/dto"
	"rentals-api/repositories"
)

// PropertyService expone el catálogo: búsqueda con filtros lineales y
// fetch por id. Las respuestas de búsqueda pasan por el caché de dos
// niveles.
type PropertyService interface {
	Search(request dto.SearchRequest) (*dto.SearchResponse, error)
	GetByID(id string) (*domain.Property, error)
}

// propertyService implementa PropertyService
type propertyService struct {
	repo      repositories.PropertyRepository
	cacheRepo repositories.CacheRepository
}

// NewPropertyService crea una nueva instancia del servicio
func NewPropertyService(repo repositories.PropertyRepository, cacheRepo repositories.CacheRepository) PropertyService {
	return &propertyService{repo: repo, cacheRepo: cacheRepo}
}

// generateCacheKey genera una clave de caché basada en los filtros
func (s *propertyService) generateCacheKey(request dto.SearchRequest) string {
	keyParts := []string{
		fmt.Sprintf("location:%s", strings.ToLower(request.Location)),
		fmt.Sprintf("category:%s", strings.ToLower(request.Category)),
		fmt.Sprintf("min_price:%.2f", request.MinPrice),
		fmt.Sprintf("max_price:%.2f", request.MaxPrice),
		fmt.Sprintf("sort_by:%s", request.SortBy),
	}

	keyString := strings.Join(keyParts, "|")
	hash := md5.Sum([]byte(keyString))
	return fmt.Sprintf("search:%x", hash)
}

// validateSearchRequest valida los filtros de búsqueda
func (s *propertyService) validateSearchRequest(request *dto.SearchRequest) error {
	if request.MinPrice < 0 {
		return fmt.Errorf("%w: min_price cannot be negative", domain.ErrValidation)
	}
	if request.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price cannot be negative", domain.ErrValidation)
	}
	if request.MinPrice > 0 && request.MaxPrice > 0 && request.MinPrice > request.MaxPrice {
		return fmt.Errorf("%w: min_price cannot be greater than max_price", domain.ErrValidation)
	}
	if request.SortBy != "" && request.SortBy != "price" && request.SortBy != "rating" {
		return fmt.Errorf("%w: sort_by must be 'price' or 'rating'", domain.ErrValidation)
	}
	return nil
}

// Search implementa la búsqueda con caché.
// El filtrado es un predicado lineal sobre la lista fija del catálogo:
// no hay motor de ranking.
func (s *propertyService) Search(request dto.SearchRequest) (*dto.SearchResponse, error) {
	if err := s.validateSearchRequest(&request); err != nil {
		return nil, err
	}

	// 1. Consultar caché primero
	cacheKey := s.generateCacheKey(request)
	if cached, found := s.cacheRepo.Get(cacheKey); found {
		return cached, nil
	}

	// 2. Filtrar el catálogo
	results := []domain.Property{}
	for _, property := range s.repo.GetAll() {
		if !matchesFilters(property, request) {
			continue
		}
		results = append(results, property)
	}

	// 3. Ordenar: precio ascendente o rating descendente
	switch request.SortBy {
	case "price":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case "rating":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	}

	response := &dto.SearchResponse{
		Results: results,
		Total:   len(results),
	}

	// 4. Guardar en caché
	s.cacheRepo.Set(cacheKey, response, 15*time.Minute)

	return response, nil
}

// matchesFilters es el predicado lineal de filtrado
func matchesFilters(property domain.Property, request dto.SearchRequest) bool {
	if request.Location != "" {
		location := strings.ToLower(request.Location)
		city := strings.ToLower(property.Address.City)
		state := strings.ToLower(property.Address.State)
		country := strings.ToLower(property.Address.Country)
		if !strings.Contains(city, location) && !strings.Contains(state, location) && !strings.Contains(country, location) {
			return false
		}
	}

	if request.Category != "" {
		category := strings.ToLower(request.Category)
		found := false
		for _, c := range property.Category {
			if strings.Contains(strings.ToLower(c), category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if request.MinPrice > 0 && property.Price < request.MinPrice {
		return false
	}
	if request.MaxPrice > 0 && property.Price > request.MaxPrice {
		return false
	}

	return true
}

// GetByID obtiene una propiedad por su ID
func (s *propertyService) GetByID(id string) (*domain.Property, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, id)
	}
	return property, nil
}
