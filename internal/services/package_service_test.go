package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
)

func TestCreatePackage(t *testing.T) {
	packageRepo, _ := newTestRepos(t)
	service := NewPackageService(packageRepo, true)

	t.Run("Valid package starts pending and unassigned", func(t *testing.T) {
		pkg, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		assert.Equal(t, models.StatusPending, pkg.Status)
		assert.Nil(t, pkg.DeliveredAt)
		assert.Equal(t, models.UnassignedDeliveryName, pkg.DeliveryName)
		assert.Nil(t, pkg.DeliveryPhone)
	})

	t.Run("Missing destinatario", func(t *testing.T) {
		_, err := service.CreatePackage("", "Calle 1", nil)

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "destinatario", validationErr.Field)
	})

	t.Run("Missing direccion", func(t *testing.T) {
		_, err := service.CreatePackage("Ana", "   ", nil)

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "direccion", validationErr.Field)
	})

	t.Run("Empty assignee ID is treated as unassigned", func(t *testing.T) {
		empty := ""
		pkg, err := service.CreatePackage("Ana", "Calle 1", &empty)
		require.NoError(t, err)

		assert.Nil(t, pkg.DeliveryPersonID)
		assert.Equal(t, models.UnassignedDeliveryName, pkg.DeliveryName)
	})
}

func TestCreatePackageWithAssignee(t *testing.T) {
	packageRepo, userRepo := newTestRepos(t)
	service := NewPackageService(packageRepo, true)

	assignee := models.NewDeliveryPerson("Carlos", "555-0101", "carlos@example.com")
	require.NoError(t, userRepo.Create(assignee))

	pkg, err := service.CreatePackage("Ana", "Calle 1", &assignee.ID)
	require.NoError(t, err)

	assert.Equal(t, "Carlos", pkg.DeliveryName)
	require.NotNil(t, pkg.DeliveryPhone)
	assert.Equal(t, "555-0101", *pkg.DeliveryPhone)
}

func TestSetPackageStatus(t *testing.T) {
	t.Run("Delivered stamps delivered_at", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		_, err = service.SetPackageStatus(created.ID, "in_transit")
		require.NoError(t, err)

		delivered, err := service.SetPackageStatus(created.ID, "delivered")
		require.NoError(t, err)

		assert.Equal(t, models.StatusDelivered, delivered.Status)
		require.NotNil(t, delivered.DeliveredAt)
		assert.False(t, delivered.DeliveredAt.Before(created.CreatedAt),
			"delivered_at must not be earlier than created_at")
	})

	t.Run("Invalid status value leaves the package unmodified", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		_, err = service.SetPackageStatus(created.ID, "shipped")
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)

		unchanged, err := service.GetPackage(created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, unchanged.Status)
		assert.Nil(t, unchanged.DeliveredAt)
	})

	t.Run("Unknown package", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		_, err := service.SetPackageStatus("missing-id", "in_transit")
		var notFoundErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("Strict mode rejects illegal edges", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		// pending -> delivered skips in_transit
		_, err = service.SetPackageStatus(created.ID, "delivered")
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)

		_, err = service.SetPackageStatus(created.ID, "cancelled")
		require.NoError(t, err)

		// cancelled is terminal
		_, err = service.SetPackageStatus(created.ID, "pending")
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Legacy mode accepts any member status", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, false)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		delivered, err := service.SetPackageStatus(created.ID, "delivered")
		require.NoError(t, err)
		require.NotNil(t, delivered.DeliveredAt)
		firstDeliveredAt := *delivered.DeliveredAt

		// Moving off delivered does not clear the timestamp
		reopened, err := service.SetPackageStatus(created.ID, "pending")
		require.NoError(t, err)
		require.NotNil(t, reopened.DeliveredAt)
		assert.WithinDuration(t, firstDeliveredAt, *reopened.DeliveredAt, time.Second)

		// Delivering again keeps the first delivery time
		again, err := service.SetPackageStatus(created.ID, "delivered")
		require.NoError(t, err)
		require.NotNil(t, again.DeliveredAt)
		assert.WithinDuration(t, firstDeliveredAt, *again.DeliveredAt, time.Second)
	})
}

func TestUpdatePackage(t *testing.T) {
	t.Run("Overwrites all fields", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		updated, err := service.UpdatePackage(created.ID, "Luis", "Calle 2", nil, "in_transit")
		require.NoError(t, err)

		assert.Equal(t, "Luis", updated.Destinatario)
		assert.Equal(t, "Calle 2", updated.Direccion)
		assert.Equal(t, models.StatusInTransit, updated.Status)
	})

	t.Run("Status is written verbatim without membership validation", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		created, err := service.CreatePackage("Ana", "Calle 1", nil)
		require.NoError(t, err)

		updated, err := service.UpdatePackage(created.ID, "Ana", "Calle 1", nil, "misplaced")
		require.NoError(t, err)
		assert.Equal(t, models.PackageStatus("misplaced"), updated.Status)
	})

	t.Run("Unknown package", func(t *testing.T) {
		packageRepo, _ := newTestRepos(t)
		service := NewPackageService(packageRepo, true)

		_, err := service.UpdatePackage("missing-id", "Ana", "Calle 1", nil, "pending")
		var notFoundErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestDeletePackage(t *testing.T) {
	packageRepo, _ := newTestRepos(t)
	service := NewPackageService(packageRepo, true)

	created, err := service.CreatePackage("Ana", "Calle 1", nil)
	require.NoError(t, err)

	require.NoError(t, service.DeletePackage(created.ID))

	var notFoundErr *apperrors.NotFoundError
	_, err = service.GetPackage(created.ID)
	assert.ErrorAs(t, err, &notFoundErr)

	err = service.DeletePackage(created.ID)
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListPackagesNewestFirst(t *testing.T) {
	packageRepo, _ := newTestRepos(t)
	service := NewPackageService(packageRepo, true)

	older := models.NewPackage("First", "Calle 1", nil)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, packageRepo.Create(older))

	_, err := service.CreatePackage("Second", "Calle 2", nil)
	require.NoError(t, err)

	packages, err := service.ListPackages()
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "Second", packages[0].Destinatario)
	assert.Equal(t, "First", packages[1].Destinatario)
}

func TestListInTransitPackages(t *testing.T) {
	packageRepo, _ := newTestRepos(t)
	service := NewPackageService(packageRepo, true)

	created, err := service.CreatePackage("Moving", "Calle 1", nil)
	require.NoError(t, err)
	_, err = service.CreatePackage("Waiting", "Calle 2", nil)
	require.NoError(t, err)

	_, err = service.SetPackageStatus(created.ID, "in_transit")
	require.NoError(t, err)

	packages, err := service.ListInTransitPackages()
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Moving", packages[0].Destinatario)
}

// Legacy end-to-end flow: create unassigned, deliver directly, delete.
// Runs with strict transitions off, matching the original backend's behavior.
func TestPackageLifecycleScenario(t *testing.T) {
	packageRepo, _ := newTestRepos(t)
	service := NewPackageService(packageRepo, false)

	created, err := service.CreatePackage("Ana", "Calle 1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.UnassignedDeliveryName, created.DeliveryName)

	delivered, err := service.SetPackageStatus(created.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)

	require.NoError(t, service.DeletePackage(created.ID))

	var notFoundErr *apperrors.NotFoundError
	_, err = service.GetPackage(created.ID)
	assert.ErrorAs(t, err, &notFoundErr)
}
