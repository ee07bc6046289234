package models

import (
	"time"

	"github.com/google/uuid"
)

// PackageStatus is the lifecycle state of a package
type PackageStatus string

const (
	StatusPending   PackageStatus = "pending"
	StatusInTransit PackageStatus = "in_transit"
	StatusDelivered PackageStatus = "delivered"
	StatusCancelled PackageStatus = "cancelled"
)

// validTransitions lists the legal outgoing edges for each status.
// Delivered and cancelled are terminal.
var validTransitions = map[PackageStatus][]PackageStatus{
	StatusPending:   {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// IsValid reports whether the status is one of the four allowed values
func (s PackageStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal edge
func (s PackageStatus) CanTransitionTo(next PackageStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidStatuses returns the allowed status values, used in error messages
func ValidStatuses() []PackageStatus {
	return []PackageStatus{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled}
}

// Package represents a parcel being tracked through delivery states
type Package struct {
	ID               string        `json:"id"`
	Destinatario     string        `json:"destinatario"`
	Direccion        string        `json:"direccion"`
	DeliveryPersonID *string       `json:"delivery_person_id"`
	Status           PackageStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	DeliveredAt      *time.Time    `json:"delivered_at"`
}

// NewPackage creates a new pending Package with a generated UUID.
// A nil deliveryPersonID means the package starts unassigned.
func NewPackage(destinatario, direccion string, deliveryPersonID *string) *Package {
	return &Package{
		ID:               uuid.New().String(),
		Destinatario:     destinatario,
		Direccion:        direccion,
		DeliveryPersonID: deliveryPersonID,
		Status:           StatusPending,
		CreatedAt:        time.Now().UTC(),
	}
}
