package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
	"package-tracker/internal/repositories"
	"package-tracker/pkg/logger"
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Login verifies submitted credentials against the stored bcrypt hash.
// An unknown email and a wrong password fail with the same error so the
// response never reveals which one it was.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("credentials", "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewAuthenticationError()
	}
	if err != nil {
		return nil, err
	}

	// An empty hash means the account has no credentials provisioned yet.
	if user.Password == "" {
		return nil, apperrors.NewAuthenticationError()
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		logger.WithField("email", email).Warn("Failed login attempt")
		return nil, apperrors.NewAuthenticationError()
	}

	logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("Login successful")

	return user.WithoutPassword(), nil
}

// HashPassword produces a bcrypt hash for storage
func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SetPassword provisions credentials for an existing account
func (s *AuthService) SetPassword(userID, plain string) error {
	hash, err := s.HashPassword(plain)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, hash)
}
