package rest

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/service"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
	requestIDCtx        = "request_id"
	loginCtx            = "login"
	roleCtx             = "role"
)

func (h *Handler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDCtx, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("requestID", c.GetString(requestIDCtx)),
		)

		switch {
		case status >= 500:
			logger.Error("error del servidor")
		case status >= 400:
			logger.Warn("error del cliente")
		default:
			logger.Info("petición procesada")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("error en la petición",
				zap.String("requestID", c.GetString(requestIDCtx)),
				zap.Error(err),
			)
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := h.config.HTTP.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

// authMiddleware accepts a bearer header, or an access_token query parameter
// for websocket upgrades where browsers cannot set headers.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.config.Auth.Enabled {
			c.Next()
			return
		}

		token := c.Query("access_token")
		if header := c.GetHeader(authorizationHeader); header != "" {
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorizedResponse(c, "formato de autorización no válido")
				return
			}
			token = parts[1]
		}
		if token == "" {
			unauthorizedResponse(c, "")
			return
		}

		claims, err := h.services.Auth.ParseToken(token)
		if err != nil {
			h.logger.Warn("token no válido", zap.Error(err))
			unauthorizedResponse(c, "token no válido o caducado")
			return
		}

		c.Set(loginCtx, claims.Subject)
		c.Set(roleCtx, claims.Role)
		c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), claims.Subject))

		c.Next()
	}
}
