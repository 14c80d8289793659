package services

import (
	"sync"

	"rentals-api/repositories"
	"rentals-api/utils"
)

// SessionRegistry mantiene un SessionManager por sesión de cliente.
// Invariante: a lo sumo un User "actual" por sesión; cada cliente
// identifica la suya con el session_id que le devolvemos.
// El estado es solo en memoria: no sobrevive al proceso.
type SessionRegistry struct {
	repo     repositories.UserRepository
	mu       sync.Mutex
	sessions map[string]*SessionManager
}

// NewSessionRegistry crea un registro vacío
func NewSessionRegistry(repo repositories.UserRepository) *SessionRegistry {
	return &SessionRegistry{
		repo:     repo,
		sessions: make(map[string]*SessionManager),
	}
}

// GetOrCreate devuelve el manager de la sesión dada, creándolo si hace
// falta. Con session_id vacío se acuña una sesión nueva.
func (r *SessionRegistry) GetOrCreate(sessionID string) (string, *SessionManager) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID == "" {
		sessionID = utils.GenerateID("sess")
	}

	manager, exists := r.sessions[sessionID]
	if !exists {
		manager = NewSessionManager(r.repo)
		r.sessions[sessionID] = manager
	}
	return sessionID, manager
}
