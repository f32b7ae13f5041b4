package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Esther-Sonia/Fitflex-tracker-app/internal/models"
	"github.com/Esther-Sonia/Fitflex-tracker-app/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (int64, error)
}

type AuthService struct {
	userRepo    userStore
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo userStore, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Age      int
	Weight   float64
	Gender   string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Age:          input.Age,
		Weight:       input.Weight,
		Gender:       input.Gender,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// The unique constraints close the check-then-insert race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

type LoginResult struct {
	AccessToken string
	Username    string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Username, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, Username: user.Username}, nil
}

// RequestPasswordReset only confirms the email is registered. The actual
// reset happens in ResetPassword; no reset token is exchanged, which
// matches the deployed API surface.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	rows, err := s.userRepo.UpdatePasswordByEmail(ctx, email, hashed)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AuthService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
