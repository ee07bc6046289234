package services

import (
	"package-tracker/internal/models"
)

// FormatPackage denormalizes a package and its joined assignee into the
// client-facing shape. A nil assignee (unassigned package, or an assignee
// that no longer exists) is a normal case, never an error.
func FormatPackage(pkg *models.Package, assignee *models.User) *models.FormattedPackage {
	formatted := &models.FormattedPackage{
		ID:               pkg.ID,
		Destinatario:     pkg.Destinatario,
		Direccion:        pkg.Direccion,
		DeliveryPersonID: pkg.DeliveryPersonID,
		Status:           pkg.Status,
		CreatedAt:        pkg.CreatedAt,
		DeliveredAt:      pkg.DeliveredAt,
		DeliveryName:     models.UnassignedDeliveryName,
	}

	if assignee != nil {
		phone := assignee.Phone
		status := assignee.Status
		formatted.DeliveryName = assignee.Name
		formatted.DeliveryPhone = &phone
		formatted.DeliveryStatus = &status
	}

	return formatted
}
