package services

import (
	"strings"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
	"package-tracker/internal/repositories"
	"package-tracker/pkg/logger"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateDeliveryPerson provisions a new delivery account. The account starts
// without a password, so it cannot log in until credentials are set.
func (s *UserService) CreateDeliveryPerson(name, phone, email string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name", "required field is missing")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, apperrors.NewValidationError("phone", "required field is missing")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email", "required field is missing")
	}

	user := models.NewDeliveryPerson(name, phone, email)
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"name":    user.Name,
	}).Info("Delivery person created")

	return user.WithoutPassword(), nil
}

// ListDeliveryPersons returns every account with the delivery role. Password
// hashes are never part of the result.
func (s *UserService) ListDeliveryPersons() ([]*models.User, error) {
	return s.userRepo.GetByRole(models.RoleDelivery)
}
