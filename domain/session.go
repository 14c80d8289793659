package domain

// SessionState es la foto actual de la máquina de estados de autenticación.
// Invariante: IsAuthenticated es true si y solo si User != nil.
type SessionState struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
	Error           string `json:"error,omitempty"`
}

// NewSessionState devuelve el estado inicial: sin usuario, sin error, sin carga.
func NewSessionState() SessionState {
	return SessionState{}
}

// SessionEvent es la unión etiquetada de transiciones que consume Reduce.
// Cada operación del SessionManager se traduce en uno o más eventos.
type SessionEvent interface {
	isSessionEvent()
}

// EventStart marca el comienzo de un intento de autenticación:
// activa el flag de carga y limpia el error anterior.
type EventStart struct{}

// EventSignedIn transiciona a autenticado con el perfil dado.
type EventSignedIn struct {
	User *User
}

// EventFailed deja la sesión en idle con el mensaje de error como overlay.
type EventFailed struct {
	Message string
}

// EventSignedOut resetea todo el estado.
type EventSignedOut struct{}

// EventClearError limpia solo el atributo de error.
type EventClearError struct{}

func (EventStart) isSessionEvent()      {}
func (EventSignedIn) isSessionEvent()   {}
func (EventFailed) isSessionEvent()     {}
func (EventSignedOut) isSessionEvent()  {}
func (EventClearError) isSessionEvent() {}

// Reduce es la función de transición pura: recibe el estado actual y un
// evento, y devuelve el estado siguiente. No tiene efectos secundarios,
// así que se puede testear de forma aislada.
func Reduce(state SessionState, event SessionEvent) SessionState {
	switch ev := event.(type) {
	case EventStart:
		state.IsLoading = true
		state.Error = ""
		return state
	case EventSignedIn:
		return SessionState{
			User:            ev.User,
			IsAuthenticated: true,
			IsLoading:       false,
		}
	case EventFailed:
		return SessionState{
			User:            nil,
			IsAuthenticated: false,
			IsLoading:       false,
			Error:           ev.Message,
		}
	case EventSignedOut:
		return SessionState{}
	case EventClearError:
		state.Error = ""
		return state
	default:
		return state
	}
}
