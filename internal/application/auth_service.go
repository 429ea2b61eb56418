package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	repo "github.com/diligence-app/diligence-backend/internal/domain/repository"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns registration, credential verification, and token issuance.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates the user and issues an access token so the client can log
// straight in. A duplicate email surfaces as repo.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*entity.User, string, time.Time, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	u := &entity.User{Email: email, Name: name, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Login verifies email/password and issues an access token. Unknown email and
// wrong password collapse to the same error to avoid account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
