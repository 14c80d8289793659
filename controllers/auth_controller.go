package controllers

import (
	"log"
	"net/http"

	"rentals-api/dto"
	"rentals-api/services"
	"rentals-api/utils"

	"github.com/gin-gonic/gin"
)

// sessionHeader identifica la sesión del cliente. Si no viene, se acuña
// una sesión nueva y el id vuelve en la respuesta.
const sessionHeader = "X-Session-ID"

// AuthController maneja los endpoints HTTP de autenticación
type AuthController struct {
	registry *services.SessionRegistry
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(registry *services.SessionRegistry) *AuthController {
	return &AuthController{registry: registry}
}

// SignIn maneja POST /auth/signin
func (ctrl *AuthController) SignIn(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. Resolver el SessionManager de esta sesión
	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))

	// 3. Intentar el sign-in. En fallo, el error queda también en el
	// overlay del estado: lo devolvemos junto con el estado para que la
	// UI pueda elegir cualquiera de los dos caminos.
	user, err := manager.SignIn(req.Email, req.Password)
	if err != nil {
		status, code := statusForError(err)
		c.Header(sessionHeader, sessionID)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	// 4. Generar el token JWT y responder
	token, err := utils.GenerateToken(user.ID, user.Email, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "error generating token",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		SessionID: sessionID,
		Token:     token,
		User:      user,
		State:     manager.State(),
	})
}

// SignUp maneja POST /auth/signup
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))

	user, err := manager.SignUp(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		status, code := statusForError(err)
		c.Header(sessionHeader, sessionID)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "error generating token",
		})
		return
	}

	log.Printf("New account created: id=%s, email=%s", user.ID, user.Email)

	c.JSON(http.StatusCreated, dto.AuthResponse{
		SessionID: sessionID,
		Token:     token,
		User:      user,
		State:     manager.State(),
	})
}

// ContinueAsGuest maneja POST /auth/guest
// Nunca falla: acuña una identidad descartable y autentica de una
func (ctrl *AuthController) ContinueAsGuest(c *gin.Context) {
	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))

	guest := manager.ContinueAsGuest()

	token, err := utils.GenerateToken(guest.ID, "", true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "error generating token",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		SessionID: sessionID,
		Token:     token,
		User:      guest,
		State:     manager.State(),
	})
}

// SignOut maneja POST /auth/signout
func (ctrl *AuthController) SignOut(c *gin.Context) {
	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))
	manager.SignOut()

	c.JSON(http.StatusOK, dto.SessionStateResponse{
		SessionID: sessionID,
		State:     manager.State(),
	})
}

// ClearError maneja POST /auth/clear-error
func (ctrl *AuthController) ClearError(c *gin.Context) {
	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))
	manager.ClearError()

	c.JSON(http.StatusOK, dto.SessionStateResponse{
		SessionID: sessionID,
		State:     manager.State(),
	})
}

// GetSession maneja GET /auth/session
// Devuelve la foto del estado para que la UI se hidrate
func (ctrl *AuthController) GetSession(c *gin.Context) {
	sessionID, manager := ctrl.registry.GetOrCreate(c.GetHeader(sessionHeader))

	c.JSON(http.StatusOK, dto.SessionStateResponse{
		SessionID: sessionID,
		State:     manager.State(),
	})
}

// HealthCheck maneja GET /health
func (ctrl *AuthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rentals-api",
	})
}
