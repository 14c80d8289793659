package repositories

import (
	"testing"
	"time"

	"rentals-api/domain"
	"rentals-api/dto"
)

// Los tests pegan solo al nivel local (ccache): sin un Memcached
// levantado, ese nivel degrada a misses logueados y el repositorio
// sigue funcionando.

// Test: Set seguido de Get devuelve la misma respuesta desde el nivel local
func TestCacheRepository_SetGetLocal(t *testing.T) {
	repo := NewCacheRepository("localhost:0")

	response := &dto.SearchResponse{
		Results: []domain.Property{{ID: "1", Name: "Luxury Beach Villa"}},
		Total:   1,
	}
	repo.Set("search:abc", response, 15*time.Minute)

	cached, found := repo.Get("search:abc")
	if !found {
		t.Fatal("Expected local cache hit after set")
	}
	if cached != response {
		t.Error("Expected the same response instance from the local cache")
	}
}

// Test: una clave nunca seteada es un miss
func TestCacheRepository_Miss(t *testing.T) {
	repo := NewCacheRepository("localhost:0")

	if _, found := repo.Get("search:nope"); found {
		t.Error("Expected miss for unknown key")
	}
}

// Test: Delete saca la entrada del nivel local
func TestCacheRepository_Delete(t *testing.T) {
	repo := NewCacheRepository("localhost:0")

	response := &dto.SearchResponse{Total: 0, Results: []domain.Property{}}
	repo.Set("search:gone", response, 15*time.Minute)
	repo.Delete("search:gone")

	if _, found := repo.Get("search:gone"); found {
		t.Error("Expected miss after delete")
	}
}
