package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

// @Summary Inicio de sesión del personal
// @Description Verifica las credenciales y devuelve un token de acceso
// @Tags Autorización
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Usuario y contraseña"
// @Success 200 {object} domain.Tokens
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody "Credenciales incorrectas"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos no válido", zap.Error(err))
		badRequestResponse(c, "formato de datos no válido")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}
