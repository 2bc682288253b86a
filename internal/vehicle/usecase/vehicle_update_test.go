package usecase

import (
	"testing"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVehicle(repo *fakeRepo, placa string) entity.Vehicle {
	return repo.seed(entity.Vehicle{
		Placa:      placa,
		Chassi:     "9BWZZZ377VT004251",
		Renavam:    "12345678901",
		Modelo:     "Volkswagen Gol",
		Ano:        2015,
		Disponivel: true,
	})
}

func TestVehicleUpdate(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(t, repo)
	seeded := seedVehicle(repo, "ABC1D23")

	vehicle, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{
		ID:      seeded.ID,
		Placa:   "ABC1D23", // unchanged plate must not trigger the uniqueness check
		Chassi:  seeded.Chassi,
		Renavam: seeded.Renavam,
		Modelo:  "Volkswagen Gol 1.6",
		Ano:     2016,
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, vehicle.ID)
	assert.Equal(t, "Volkswagen Gol 1.6", vehicle.Modelo)
	assert.Equal(t, 2016, vehicle.Ano)
}

func TestVehicleUpdate_NotFound(t *testing.T) {
	uc := newTestUsecase(t, newFakeRepo())

	_, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{
		ID:      99,
		Placa:   "ABC1D23",
		Chassi:  "9BWZZZ377VT004251",
		Renavam: "12345678901",
		Modelo:  "Volkswagen Gol",
		Ano:     2015,
	})
	requireErrorCode(t, err, goerror.CodeNotFound)
}

func TestVehicleUpdate_PlateTakenByOtherVehicle(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(t, repo)
	seedVehicle(repo, "ABC1D23")
	second := seedVehicle(repo, "XYZ9K88")

	_, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{
		ID:      second.ID,
		Placa:   "abc1d23",
		Chassi:  second.Chassi,
		Renavam: second.Renavam,
		Modelo:  second.Modelo,
		Ano:     second.Ano,
	})
	requireErrorCode(t, err, goerror.CodeConflict)
	assert.Equal(t, "XYZ9K88", repo.vehicles[second.ID].Placa, "conflicting update must not write")
}

func TestVehicleUpdate_PlateChanged(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(t, repo)
	seeded := seedVehicle(repo, "ABC1D23")

	vehicle, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{
		ID:      seeded.ID,
		Placa:   "xyz9k88",
		Chassi:  seeded.Chassi,
		Renavam: seeded.Renavam,
		Modelo:  seeded.Modelo,
		Ano:     seeded.Ano,
	})
	require.NoError(t, err)
	assert.Equal(t, "XYZ9K88", vehicle.Placa)
}

func TestVehicleUpdate_Validation(t *testing.T) {
	uc := newTestUsecase(t, newFakeRepo())

	_, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{ID: 1})
	requireErrorCode(t, err, goerror.CodeInvalidInput)
}

func TestVehicleUpdate_StorageFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failing = true
	uc := newTestUsecase(t, repo)

	_, err := uc.VehicleUpdate(t.Context(), VehicleUpdateInput{
		ID:      1,
		Placa:   "ABC1D23",
		Chassi:  "9BWZZZ377VT004251",
		Renavam: "12345678901",
		Modelo:  "Volkswagen Gol",
		Ano:     2015,
	})
	requireErrorCode(t, err, goerror.CodeInternal)
}
