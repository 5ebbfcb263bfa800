package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/auth"
	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	logger   zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new user with the given credentials. The password is
// stored verbatim; the login query relies on exact equality.
func (s *authService) Register(ctx context.Context, username, password string) error {
	user := model.User{
		Username: username,
		Password: password,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			s.logger.Debug().Str("username", username).Msg("registration rejected, username taken")
			return model.ErrUsernameTaken
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to register user")
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return nil
}

// Login authenticates the credentials and returns a bearer token bound to
// the username.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to look up user")
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("username", username).Msg("login rejected, invalid credentials")
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to issue token")
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return token, nil
}
