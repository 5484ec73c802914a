package noleggioserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/cantinota/noleggio-api/internal/domains/auth/application"
	authports "github.com/cantinota/noleggio-api/internal/domains/auth/ports"
	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

// AuthAPI implements the login and liveness endpoints.
type AuthAPI struct {
	service *authapp.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(service *authapp.Service) AuthAPI {
	return AuthAPI{service: service}
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Get /
// Liveness probe
func (api *AuthAPI) Health(c *gin.Context) {
	c.String(http.StatusOK, "Noleggio backend attivo")
}

// Post /login
// Authenticate an admin and issue a session token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, authports.ErrInvalidCredentials) {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Credenziali non valide"))
			return
		}
		respondProblem(c, apierrors.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
