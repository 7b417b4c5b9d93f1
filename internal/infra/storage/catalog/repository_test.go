package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

func TestRepository_Services(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository()

	t.Run("list", func(t *testing.T) {
		services, err := repo.ListServices(ctx)
		require.NoError(t, err)
		assert.Len(t, services, 6)
	})

	t.Run("get by id", func(t *testing.T) {
		service, err := repo.GetServiceByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Haircut & Styling", service.Name)
		assert.Equal(t, 45.0, service.Price)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetServiceByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestRepository_Employees(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository()

	t.Run("list", func(t *testing.T) {
		employees, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Len(t, employees, 5)
	})

	t.Run("get by id", func(t *testing.T) {
		employee, err := repo.GetEmployeeByID(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Valeria Cruz", employee.Name)
		assert.Equal(t, "2", employee.SalonID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetEmployeeByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestRepository_Salons(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository()

	t.Run("list", func(t *testing.T) {
		salons, err := repo.ListSalons(ctx)
		require.NoError(t, err)
		assert.Len(t, salons, 3)
	})

	t.Run("get by id", func(t *testing.T) {
		salon, err := repo.GetSalonByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Bella Vita Salon", salon.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetSalonByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})
}

func TestRepository_ListCopiesAreDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(
		[]domain.Service{{ID: "1", Name: "Haircut"}},
		nil,
		nil,
	)

	services, err := repo.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)

	services[0].Name = "mutated"

	again, err := repo.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", again[0].Name)
}
