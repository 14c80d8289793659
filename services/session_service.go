package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"rentals-api/domain"
	"rentals-api/repositories"
	"rentals-api/utils"
)

// SessionManager es la máquina de estados de autenticación de UNA sesión
// de cliente. Las transiciones pasan todas por domain.Reduce; acá solo
// vive la orquestación: validaciones, lookup contra el repositorio de
// usuarios y el guard de secuencia.
//
// El guard de secuencia: cada intento incrementa seq bajo el lock, y el
// resultado solo se aplica al estado si su seq sigue siendo el vigente.
// Así, si un caller saltea el deshabilitado de la UI y dispara dos
// sign-in solapados, la respuesta vieja se descarta en vez de pisar a la
// más nueva. El resultado igual se devuelve a su caller.
type SessionManager struct {
	repo  repositories.UserRepository
	mu    sync.Mutex
	state domain.SessionState
	seq   uint64
}

// NewSessionManager crea un manager en el estado inicial:
// sin usuario, sin carga, sin error.
func NewSessionManager(repo repositories.UserRepository) *SessionManager {
	return &SessionManager{
		repo:  repo,
		state: domain.NewSessionState(),
	}
}

// State devuelve la foto actual del estado de sesión
func (m *SessionManager) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// begin arranca un intento de autenticación: activa el flag de carga,
// limpia el error anterior y devuelve el número de secuencia del intento.
func (m *SessionManager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.state = domain.Reduce(m.state, domain.EventStart{})
	return m.seq
}

// settle aplica el desenlace de un intento, salvo que haya quedado viejo
func (m *SessionManager) settle(seq uint64, event domain.SessionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.seq {
		log.Printf("SessionManager: discarding stale result (seq=%d, current=%d)", seq, m.seq)
		return
	}
	m.state = domain.Reduce(m.state, event)
}

// SignIn autentica contra el repositorio de usuarios.
// En cualquier fallo el estado queda en idle-con-error y el error se
// re-lanza al caller para que la UI pueda reaccionar en forma síncrona
// además de leer el estado.
func (m *SessionManager) SignIn(email, password string) (*domain.User, error) {
	seq := m.begin()

	// 1. Validar antes de tocar el repositorio
	if email == "" || password == "" {
		err := fmt.Errorf("%w: email and password are required", domain.ErrValidation)
		m.settle(seq, domain.EventFailed{Message: err.Error()})
		return nil, err
	}

	// 2. Buscar la cuenta por email (case-insensitive). Una falla del
	// store NO es lo mismo que cuenta inexistente: solo el not-found del
	// repositorio se reporta como "no account".
	user, err := m.repo.GetByEmail(email)
	if err != nil {
		failure := fmt.Errorf("error looking up account: %w", err)
		if errors.Is(err, domain.ErrNotFound) {
			failure = fmt.Errorf("%w: no account with this email", domain.ErrNotFound)
		}
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}

	// 3. Verificar la contraseña contra el hash guardado
	if !utils.CheckPasswordHash(password, user.Password) {
		failure := fmt.Errorf("%w: incorrect password", domain.ErrInvalidCredentials)
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}

	// 4. Transicionar a autenticado con el perfil (sin el password)
	profile := user.Profile()
	m.settle(seq, domain.EventSignedIn{User: profile})
	return profile, nil
}

// SignUp registra una cuenta nueva y deja la sesión autenticada
func (m *SessionManager) SignUp(firstName, lastName, email, password string) (*domain.User, error) {
	seq := m.begin()

	// 1. Los cuatro campos son obligatorios
	if firstName == "" || lastName == "" || email == "" || password == "" {
		err := fmt.Errorf("%w: all fields are required", domain.ErrValidation)
		m.settle(seq, domain.EventFailed{Message: err.Error()})
		return nil, err
	}

	// 2. Largo mínimo de contraseña
	if len(password) < 6 {
		err := fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
		m.settle(seq, domain.EventFailed{Message: err.Error()})
		return nil, err
	}

	// 3. Chequeo de email duplicado (el índice único del store cubre la
	// carrera entre este chequeo y el insert)
	exists, err := m.repo.ExistsByEmail(email)
	if err != nil {
		failure := fmt.Errorf("error checking existing account: %w", err)
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}
	if exists {
		failure := fmt.Errorf("%w: an account with this email already exists", domain.ErrConflict)
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}

	// 4. Hashear la contraseña: nunca se guarda en texto plano
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		failure := fmt.Errorf("error hashing password: %w", err)
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}

	// 5. Acuñar el id y agregar el registro al store
	user := &domain.User{
		ID:        utils.GenerateID("usr"),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashedPassword,
	}
	if err := m.repo.Create(user); err != nil {
		failure := err
		if errors.Is(err, domain.ErrConflict) {
			failure = fmt.Errorf("%w: an account with this email already exists", domain.ErrConflict)
		}
		m.settle(seq, domain.EventFailed{Message: failure.Error()})
		return nil, failure
	}

	profile := user.Profile()
	m.settle(seq, domain.EventSignedIn{User: profile})
	return profile, nil
}

// ContinueAsGuest acuña una identidad descartable y autentica de una.
// Síncrono, sin validación, sin tocar el repositorio: nunca falla.
func (m *SessionManager) ContinueAsGuest() *domain.User {
	guest := &domain.User{
		ID:        utils.GenerateID("guest"),
		FirstName: "Guest",
		LastName:  "User",
		IsGuest:   true,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++ // invalida cualquier intento en vuelo
	m.state = domain.Reduce(m.state, domain.EventSignedIn{User: guest})
	return guest
}

// SignOut resetea la sesión al estado inicial. Nunca falla.
func (m *SessionManager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++ // invalida cualquier intento en vuelo
	m.state = domain.Reduce(m.state, domain.EventSignedOut{})
}

// ClearError limpia solo el atributo de error. Idempotente.
func (m *SessionManager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = domain.Reduce(m.state, domain.EventClearError{})
}
