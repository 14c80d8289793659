package dto

import "rentals-api/domain"

// SignInRequest representa el request de sign-in.
// La validación de campos vacíos la hace el SessionManager (no el binding),
// para que el error quede también en el overlay de la sesión.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest representa el request de registro
type SignUpRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse representa la respuesta de sign-in, sign-up y guest.
// Devuelve el token JWT, el usuario y la foto del estado de sesión,
// además del session_id para que el cliente siga usando el mismo manager.
type AuthResponse struct {
	SessionID string              `json:"session_id"`
	Token     string              `json:"token"`
	User      *domain.User        `json:"user"`
	State     domain.SessionState `json:"state"`
}

// SessionStateResponse es la foto del estado para GET /auth/session
type SessionStateResponse struct {
	SessionID string              `json:"session_id"`
	State     domain.SessionState `json:"state"`
}
