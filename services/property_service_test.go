package services

import (
	"errors"
	"testing"
	"time"

	"rentals-api/domain"
	"rentals-api/dto"
)

// ============================================
// MOCK del caché de búsquedas
// ============================================

type mockCacheRepository struct {
	entries map[string]*dto.SearchResponse
	hits    int
	misses  int
	sets    int
}

func newMockCache() *mockCacheRepository {
	return &mockCacheRepository{entries: make(map[string]*dto.SearchResponse)}
}

func (m *mockCacheRepository) Get(key string) (*dto.SearchResponse, bool) {
	if response, found := m.entries[key]; found {
		m.hits++
		return response, true
	}
	m.misses++
	return nil, false
}

func (m *mockCacheRepository) Set(key string, response *dto.SearchResponse, _ time.Duration) {
	m.sets++
	m.entries[key] = response
}

func (m *mockCacheRepository) Delete(key string) {
	delete(m.entries, key)
}

// newPropertyFixture arma el servicio con un catálogo chico y variado
func newPropertyFixture() (PropertyService, *mockCacheRepository) {
	repo := &mockPropertyRepository{
		properties: map[string]domain.Property{
			"1": {
				ID:       "1",
				Name:     "Luxury Beach Villa",
				Address:  domain.Address{City: "Malibu", State: "California", Country: "United States"},
				Rating:   4.8,
				Category: []string{"Beach", "Luxury"},
				Price:    450,
			},
			"2": {
				ID:       "2",
				Name:     "Downtown Modern Apartment",
				Address:  domain.Address{City: "New York", State: "New York", Country: "United States"},
				Rating:   4.5,
				Category: []string{"City", "Modern"},
				Price:    200,
			},
			"3": {
				ID:       "3",
				Name:     "Mountain Cabin Retreat",
				Address:  domain.Address{City: "Aspen", State: "Colorado", Country: "United States"},
				Rating:   4.7,
				Category: []string{"Mountain", "Cabin"},
				Price:    180,
			},
		},
	}
	cache := newMockCache()
	return NewPropertyService(repo, cache), cache
}

// ============================================
// TESTS de la búsqueda
// ============================================

// Test: sin filtros devuelve el catálogo completo
func TestSearch_NoFilters(t *testing.T) {
	service, _ := newPropertyFixture()

	response, err := service.Search(dto.SearchRequest{})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 3 || len(response.Results) != 3 {
		t.Errorf("Expected 3 results, got total=%d len=%d", response.Total, len(response.Results))
	}
}

// Test: el filtro de location matchea ciudad, estado o país,
// case-insensitive y por substring
func TestSearch_LocationFilter(t *testing.T) {
	service, _ := newPropertyFixture()

	response, err := service.Search(dto.SearchRequest{Location: "malibu"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 1 || response.Results[0].ID != "1" {
		t.Errorf("Expected only the Malibu property, got %+v", response.Results)
	}

	// "york" matchea ciudad Y estado de la propiedad 2
	response, err = service.Search(dto.SearchRequest{Location: "york"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 1 || response.Results[0].ID != "2" {
		t.Errorf("Expected only the New York property, got %+v", response.Results)
	}

	// el país matchea todo el catálogo
	response, err = service.Search(dto.SearchRequest{Location: "united states"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 3 {
		t.Errorf("Expected all 3 properties for country match, got %d", response.Total)
	}
}

// Test: el filtro de categoría matchea por substring dentro de la lista
func TestSearch_CategoryFilter(t *testing.T) {
	service, _ := newPropertyFixture()

	response, err := service.Search(dto.SearchRequest{Category: "cabin"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 1 || response.Results[0].ID != "3" {
		t.Errorf("Expected only the cabin, got %+v", response.Results)
	}
}

// Test: rango de precios inclusivo en los bordes
func TestSearch_PriceRange(t *testing.T) {
	service, _ := newPropertyFixture()

	response, err := service.Search(dto.SearchRequest{MinPrice: 180, MaxPrice: 200})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Total != 2 {
		t.Errorf("Expected 2 properties in [180,200], got %d", response.Total)
	}
	for _, p := range response.Results {
		if p.Price < 180 || p.Price > 200 {
			t.Errorf("Property %s outside range: %.2f", p.ID, p.Price)
		}
	}
}

// Test: sort_by=price ordena ascendente, sort_by=rating descendente
func TestSearch_Sorting(t *testing.T) {
	service, _ := newPropertyFixture()

	byPrice, err := service.Search(dto.SearchRequest{SortBy: "price"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 1; i < len(byPrice.Results); i++ {
		if byPrice.Results[i-1].Price > byPrice.Results[i].Price {
			t.Errorf("Expected ascending prices, got %.2f before %.2f",
				byPrice.Results[i-1].Price, byPrice.Results[i].Price)
		}
	}

	byRating, err := service.Search(dto.SearchRequest{SortBy: "rating"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 1; i < len(byRating.Results); i++ {
		if byRating.Results[i-1].Rating < byRating.Results[i].Rating {
			t.Errorf("Expected descending ratings, got %.1f before %.1f",
				byRating.Results[i-1].Rating, byRating.Results[i].Rating)
		}
	}
}

// Test: filtros inválidos fallan con ErrValidation
func TestSearch_InvalidFilters(t *testing.T) {
	service, cache := newPropertyFixture()

	cases := []dto.SearchRequest{
		{MinPrice: -1},
		{MaxPrice: -10},
		{MinPrice: 300, MaxPrice: 100},
		{SortBy: "name"},
	}

	for _, req := range cases {
		if _, err := service.Search(req); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Expected ErrValidation for %+v, got %v", req, err)
		}
	}
	if cache.sets != 0 {
		t.Error("Expected nothing cached on validation failure")
	}
}

// ============================================
// TESTS del comportamiento del caché
// ============================================

// Test: la segunda búsqueda idéntica sale del caché sin recalcular
func TestSearch_CacheHit(t *testing.T) {
	service, cache := newPropertyFixture()
	request := dto.SearchRequest{Location: "malibu"}

	first, err := service.Search(request)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cache.misses != 1 || cache.sets != 1 {
		t.Errorf("Expected one miss and one set, got misses=%d sets=%d", cache.misses, cache.sets)
	}

	second, err := service.Search(request)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("Expected one cache hit, got %d", cache.hits)
	}
	if cache.sets != 1 {
		t.Errorf("Expected no second set, got %d", cache.sets)
	}
	if second != first {
		t.Error("Expected the cached response instance")
	}
}

// Test: filtros distintos generan claves de caché distintas
func TestSearch_CacheKeyPerFilter(t *testing.T) {
	service, cache := newPropertyFixture()

	if _, err := service.Search(dto.SearchRequest{Location: "malibu"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := service.Search(dto.SearchRequest{Location: "aspen"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cache.hits != 0 {
		t.Errorf("Expected no hits across different filters, got %d", cache.hits)
	}
	if cache.sets != 2 {
		t.Errorf("Expected 2 distinct cache entries, got %d", cache.sets)
	}
}

// Test: la location se normaliza a minúsculas en la clave, así que
// "Malibu" y "malibu" comparten entrada
func TestSearch_CacheKeyCaseInsensitive(t *testing.T) {
	service, cache := newPropertyFixture()

	if _, err := service.Search(dto.SearchRequest{Location: "Malibu"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := service.Search(dto.SearchRequest{Location: "malibu"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cache.hits != 1 {
		t.Errorf("Expected case-insensitive key to hit, got %d hits", cache.hits)
	}
}

// ============================================
// TESTS del fetch por id
// ============================================

func TestGetByID(t *testing.T) {
	service, _ := newPropertyFixture()

	property, err := service.GetByID("1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if property.Name != "Luxury Beach Villa" {
		t.Errorf("Expected Luxury Beach Villa, got %q", property.Name)
	}

	if _, err := service.GetByID("999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
