package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
	"package-tracker/internal/repositories"
	"package-tracker/pkg/logger"
)

type PackageService struct {
	packageRepo       *repositories.PackageRepository
	strictTransitions bool
}

func NewPackageService(packageRepo *repositories.PackageRepository, strictTransitions bool) *PackageService {
	return &PackageService{
		packageRepo:       packageRepo,
		strictTransitions: strictTransitions,
	}
}

// CreatePackage validates the required fields and inserts a new pending
// package. The assignee is optional; nil means unassigned.
func (s *PackageService) CreatePackage(destinatario, direccion string, deliveryPersonID *string) (*models.FormattedPackage, error) {
	if strings.TrimSpace(destinatario) == "" {
		return nil, apperrors.NewValidationError("destinatario", "required field is missing")
	}
	if strings.TrimSpace(direccion) == "" {
		return nil, apperrors.NewValidationError("direccion", "required field is missing")
	}
	if deliveryPersonID != nil && strings.TrimSpace(*deliveryPersonID) == "" {
		deliveryPersonID = nil
	}

	pkg := models.NewPackage(destinatario, direccion, deliveryPersonID)
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"package_id":   pkg.ID,
		"destinatario": pkg.Destinatario,
	}).Info("Package created")

	return s.GetPackage(pkg.ID)
}

// ListPackages returns all packages, newest created first
func (s *PackageService) ListPackages() ([]*models.FormattedPackage, error) {
	records, err := s.packageRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return formatRecords(records), nil
}

// ListInTransitPackages returns the packages currently on the road
func (s *PackageService) ListInTransitPackages() ([]*models.FormattedPackage, error) {
	records, err := s.packageRepo.GetByStatus(models.StatusInTransit)
	if err != nil {
		return nil, err
	}
	return formatRecords(records), nil
}

// GetPackage returns one package in the client-facing shape
func (s *PackageService) GetPackage(id string) (*models.FormattedPackage, error) {
	record, err := s.packageRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("package", id)
	}
	if err != nil {
		return nil, err
	}
	return FormatPackage(record.Package, record.Assignee), nil
}

// SetPackageStatus applies a status transition. The new status must be one of
// the four allowed values; in strict mode the edge itself must also be legal.
// The first transition into delivered stamps delivered_at; the timestamp is
// never cleared or overwritten afterwards.
func (s *PackageService) SetPackageStatus(id string, status string) (*models.FormattedPackage, error) {
	newStatus := models.PackageStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("invalid status %q, must be one of: %s", status, joinStatuses()))
	}

	record, err := s.packageRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("package", id)
	}
	if err != nil {
		return nil, err
	}

	pkg := record.Package
	if s.strictTransitions && !pkg.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("cannot transition from %s to %s", pkg.Status, newStatus))
	}

	pkg.Status = newStatus
	if newStatus == models.StatusDelivered && pkg.DeliveredAt == nil {
		now := time.Now().UTC()
		pkg.DeliveredAt = &now
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"package_id": pkg.ID,
		"status":     pkg.Status,
	}).Info("Package status updated")

	return s.GetPackage(id)
}

// UpdatePackage overwrites all mutable fields of a package. Unlike
// SetPackageStatus, the status value is written verbatim without membership
// validation; this looser contract matches the legacy full-update endpoint.
func (s *PackageService) UpdatePackage(id, destinatario, direccion string, deliveryPersonID *string, status string) (*models.FormattedPackage, error) {
	record, err := s.packageRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("package", id)
	}
	if err != nil {
		return nil, err
	}

	pkg := record.Package
	pkg.Destinatario = destinatario
	pkg.Direccion = direccion
	pkg.DeliveryPersonID = deliveryPersonID
	pkg.Status = models.PackageStatus(status)

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}

	logger.WithField("package_id", pkg.ID).Info("Package updated")

	return s.GetPackage(id)
}

// DeletePackage removes a package. Deleting an unknown ID fails with a
// not-found error; the operation is never partial.
func (s *PackageService) DeletePackage(id string) error {
	affected, err := s.packageRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("package", id)
	}

	logger.WithField("package_id", id).Info("Package deleted")
	return nil
}

func formatRecords(records []*repositories.PackageRecord) []*models.FormattedPackage {
	formatted := make([]*models.FormattedPackage, 0, len(records))
	for _, record := range records {
		formatted = append(formatted, FormatPackage(record.Package, record.Assignee))
	}
	return formatted
}

func joinStatuses() string {
	statuses := models.ValidStatuses()
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
