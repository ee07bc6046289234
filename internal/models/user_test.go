package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryPerson(t *testing.T) {
	user := NewDeliveryPerson("Carlos", "555-0101", "carlos@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, RoleDelivery, user.Role)
	assert.Equal(t, UserStatusAvailable, user.Status)
	assert.Empty(t, user.Password)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := NewDeliveryPerson("Carlos", "555-0101", "carlos@example.com")
	user.Password = "$2a$10$somethinghashed"

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	_, present := fields["password"]
	assert.False(t, present)
	assert.NotContains(t, string(data), "somethinghashed")
}

func TestWithoutPassword(t *testing.T) {
	user := NewDeliveryPerson("Carlos", "555-0101", "carlos@example.com")
	user.Password = "hash"

	stripped := user.WithoutPassword()

	assert.Empty(t, stripped.Password)
	assert.Equal(t, user.ID, stripped.ID)
	// The original is untouched
	assert.Equal(t, "hash", user.Password)
}
