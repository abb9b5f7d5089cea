package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"rheumassoc/api/internal/config"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
	"rheumassoc/api/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserStore is the slice of the user repository the auth flow needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type RegisterInput struct {
	Email      string
	Password   string
	LastName   string
	FirstName  string
	Patronymic *string
}

// Register creates a plain user account. Duplicate detection is left to the
// unique index so concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		LastName:     strings.TrimSpace(input.LastName),
		FirstName:    strings.TrimSpace(input.FirstName),
		Patronymic:   input.Patronymic,
		Role:         models.UserRoleUser,
		IsActive:     true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed bearer token. The failure
// reason is deliberately identical for unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return "", models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", models.User{}, ErrUserInactive
	}

	token, err := security.IssueToken(s.cfg.Security.JWTSecret, user.Email, string(user.Role), s.cfg.Security.JWTTTL)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}
