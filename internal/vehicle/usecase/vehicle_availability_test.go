package usecase

import (
	"testing"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleAvailability(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(t, repo)
	seeded := seedVehicle(repo, "ABC1D23")

	vehicle, err := uc.VehicleAvailability(t.Context(), VehicleAvailabilityInput{
		ID:         seeded.ID,
		Disponivel: false,
	})
	require.NoError(t, err)

	assert.False(t, vehicle.Disponivel)
	assert.Equal(t, seeded.Placa, vehicle.Placa, "only the availability flag changes")
	assert.Equal(t, seeded.Modelo, vehicle.Modelo)
	assert.Equal(t, seeded.Ano, vehicle.Ano)
}

func TestVehicleAvailability_NotFound(t *testing.T) {
	uc := newTestUsecase(t, newFakeRepo())

	_, err := uc.VehicleAvailability(t.Context(), VehicleAvailabilityInput{ID: 42, Disponivel: true})
	requireErrorCode(t, err, goerror.CodeNotFound)
}

func TestVehicleAvailability_StorageFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failing = true
	uc := newTestUsecase(t, repo)

	_, err := uc.VehicleAvailability(t.Context(), VehicleAvailabilityInput{ID: 1, Disponivel: true})
	requireErrorCode(t, err, goerror.CodeInternal)
}
