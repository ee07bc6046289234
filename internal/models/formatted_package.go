package models

import "time"

// UnassignedDeliveryName is returned as delivery_name when a package has no
// assignee, or when its delivery_person_id no longer matches an account.
const UnassignedDeliveryName = "unassigned"

// FormattedPackage is the client-facing projection of a package joined with
// its assigned delivery person's denormalized fields.
type FormattedPackage struct {
	ID               string        `json:"id"`
	Destinatario     string        `json:"destinatario"`
	Direccion        string        `json:"direccion"`
	DeliveryPersonID *string       `json:"delivery_person_id"`
	Status           PackageStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	DeliveredAt      *time.Time    `json:"delivered_at"`
	DeliveryName     string        `json:"delivery_name"`
	DeliveryPhone    *string       `json:"delivery_phone"`
	DeliveryStatus   *string       `json:"delivery_status"`
}
