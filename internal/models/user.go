package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleDelivery = "delivery"
	RoleAdmin    = "admin"
)

// Delivery person availability
const (
	UserStatusAvailable = "available"
	UserStatusBusy      = "busy"
	UserStatusOffline   = "offline"
)

// User represents a delivery account. Password holds the bcrypt hash and is
// never serialized; an empty hash means the account cannot log in.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDeliveryPerson creates a new delivery account with a generated UUID
func NewDeliveryPerson(name, phone, email string) *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Role:      RoleDelivery,
		Status:    UserStatusAvailable,
		CreatedAt: time.Now().UTC(),
	}
}

// WithoutPassword returns a copy of the user with the password hash cleared
func (u *User) WithoutPassword() *User {
	clone := *u
	clone.Password = ""
	return &clone
}
