package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/config"
	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
)

// AuthServiceImpl checks staff logins against the configured accounts.
type AuthServiceImpl struct {
	tokens *auth.TokenManager
	users  map[string]string
	logger *zap.Logger
}

func NewAuthService(tokens *auth.TokenManager, cfg config.AuthConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		tokens: tokens,
		users:  cfg.Users,
		logger: logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req domain.LoginRequest) (*domain.Tokens, error) {
	if s.tokens == nil {
		return nil, errors.New("la autenticación no está configurada")
	}

	hash, ok := s.users[req.Login]
	if !ok {
		s.logger.Warn("intento de acceso con usuario desconocido", zap.String("login", req.Login))
		return nil, domain.ErrInvalidCredentials
	}

	valid, err := auth.VerifyPassword(req.Password, hash)
	if err != nil {
		s.logger.Error("hash de contraseña no válido en la configuración", zap.String("login", req.Login), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if !valid {
		s.logger.Warn("contraseña incorrecta", zap.String("login", req.Login))
		return nil, domain.ErrInvalidCredentials
	}
	if auth.NeedsRehash(hash, auth.DefaultArgon2Params) {
		s.logger.Warn("el hash de la contraseña usa parámetros débiles; genérelo de nuevo con hash-password",
			zap.String("login", req.Login))
	}

	accessToken, err := s.tokens.NewAccessToken(req.Login, string(domain.StaffRoleReception))
	if err != nil {
		s.logger.Error("error al generar el token de acceso", zap.Error(err))
		return nil, errors.New("error al iniciar sesión")
	}

	return &domain.Tokens{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

func (s *AuthServiceImpl) ParseToken(accessToken string) (*auth.Claims, error) {
	if s.tokens == nil {
		return nil, auth.ErrInvalidToken
	}
	return s.tokens.Parse(accessToken)
}
