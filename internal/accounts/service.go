package accounts

import (
	"context"
	"errors"

	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/models"
	"github.com/webfolio/portfolio-api/internal/tokens"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering with an already used email
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which accounts exist
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service encapsulates registration and login
type Service struct {
	cfg  *config.Config
	repo AccountRepository
}

func NewService(cfg *config.Config, r AccountRepository) *Service {
	return &Service{cfg: cfg, repo: r}
}

// Register hashes the password and stores a new account with the user role.
// Fails with ErrEmailTaken when the email is already registered.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a := &models.Account{
		Username: username,
		Email:    email,
		Password: string(digest),
		Role:     models.RoleUser,
	}
	return s.repo.Insert(ctx, a)
}

// Login verifies the credentials and returns a signed access token.
// Unknown email and wrong password produce the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return tokens.GenerateAccessToken(s.cfg, a, s.cfg.JWT.ExpiresIn)
}
