package api

import (
	"errors"
	"net/http"

	"github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	resdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/response"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/cookie"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/jwt"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Staff login
// @Description Login with username and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Requête invalide",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Identifiants incorrects.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{Username: result.Username})
}

// @Summary Staff logout
// @Description Clears the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
