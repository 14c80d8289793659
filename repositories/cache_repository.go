package repositories

import (
	"encoding/json"
	"log"
	"time"

	"rentals-api/dto"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// CacheRepository cachea respuestas de búsqueda del catálogo en dos
// niveles: ccache local (TTL corto) y Memcached compartido (TTL largo).
type CacheRepository interface {
	Get(key string) (*dto.SearchResponse, bool)
	Set(key string, response *dto.SearchResponse, ttl time.Duration)
	Delete(key string)
}

// cacheRepository implementa CacheRepository con dos niveles
type cacheRepository struct {
	localCache      *ccache.Cache[*dto.SearchResponse]
	memcachedClient *memcache.Client
}

// NewCacheRepository crea una nueva instancia de CacheRepository
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[*dto.SearchResponse]().MaxSize(1000))
	memcachedClient := memcache.New(memcachedHost)

	log.Printf("Cache repository initialized with Memcached at %s", memcachedHost)

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// Get obtiene una respuesta del caché (primero local, luego Memcached)
func (r *cacheRepository) Get(key string) (*dto.SearchResponse, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		log.Printf("Cache HIT (local): key=%s", key)
		return item.Value(), true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache MISS: key=%s", key)
			return nil, false
		}
		log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 3. Parsear datos de Memcached
	var response dto.SearchResponse
	if err := json.Unmarshal(memcachedItem.Value, &response); err != nil {
		log.Printf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 4. Guardar en caché local para próximas consultas
	r.localCache.Set(key, &response, 5*time.Minute)
	log.Printf("Cache HIT (Memcached): key=%s, stored in local cache", key)

	return &response, true
}

// Set guarda una respuesta en ambos niveles de caché
func (r *cacheRepository) Set(key string, response *dto.SearchResponse, ttl time.Duration) {
	// 1. Guardar en caché local con TTL de 5 minutos
	r.localCache.Set(key, response, 5*time.Minute)
	log.Printf("Cache SET (local): key=%s, ttl=5m", key)

	// 2. Serializar a JSON para Memcached
	jsonData, err := json.Marshal(response)
	if err != nil {
		log.Printf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	// 3. Guardar en Memcached (Memcached usa segundos)
	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: int32(ttl.Seconds()),
	}

	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache SET (Memcached): key=%s, ttl=%s", key, ttl)
}

// Delete elimina una clave de ambos niveles de caché
func (r *cacheRepository) Delete(key string) {
	r.localCache.Delete(key)
	log.Printf("Cache DELETE (local): key=%s", key)

	if err := r.memcachedClient.Delete(key); err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache DELETE (Memcached): key=%s (not found)", key)
			return
		}
		log.Printf("Error deleting from Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache DELETE (Memcached): key=%s", key)
}
