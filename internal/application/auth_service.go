package application

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
	repo "github.com/rizkyfahmi/todoauth/internal/domain/repository"
	"github.com/rizkyfahmi/todoauth/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates registration and login. Login failures collapse
// unknown email and wrong password into a single ErrInvalidCredentials so the
// boundary never reveals whether an email exists.
type AuthService struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Register creates a credential record with a fresh id and a bcrypt digest.
// Duplicate emails propagate repository.ErrDuplicateEmail unchanged.
func (s *AuthService) Register(email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing
// a token.
func (s *AuthService) Authenticate(email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and mints a bearer token with subject = user id.
func (s *AuthService) Login(email, password string) (string, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}
	token, err := s.Tokens.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return "", err
	}
	return token, nil
}
