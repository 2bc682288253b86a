package db

import (
	"context"
	"errors"
	"testing"

	"github.com/frotahub/frota/internal/pkg/clock"
	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const testSchema = `
CREATE TABLE veiculos (
    id               BIGSERIAL PRIMARY KEY,
    placa            VARCHAR(7)   NOT NULL,
    chassi           VARCHAR(17)  NOT NULL,
    renavam          VARCHAR(11)  NOT NULL,
    modelo           VARCHAR(100) NOT NULL,
    ano              INTEGER      NOT NULL,
    disponivel       BOOLEAN      NOT NULL DEFAULT TRUE,
    data_criacao     TIMESTAMPTZ  NOT NULL DEFAULT now(),
    data_atualizacao TIMESTAMPTZ  NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX idx_veiculos_placa ON veiculos (placa);
`

func setupStore(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("frota"),
		postgres.WithUsername("frota"),
		postgres.WithPassword("frota"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)

	return NewDB(pool, clock.New(), instrument.NewNoop())
}

func newVehicleFixture(placa string) entity.NewVehicle {
	return entity.NewVehicle{
		Placa:   placa,
		Chassi:  "9BWZZZ377VT004251",
		Renavam: "12345678901",
		Modelo:  "Volkswagen Gol",
		Ano:     2015,
	}
}

func TestDB(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	var firstID int64

	t.Run("create populates defaults", func(t *testing.T) {
		created, err := store.CreateVehicle(ctx, newVehicleFixture("ABC1D23"))
		require.NoError(t, err)

		assert.Positive(t, created.ID)
		assert.Equal(t, "ABC1D23", created.Placa)
		assert.True(t, created.Disponivel)
		assert.False(t, created.DataCriacao.IsZero())
		assert.False(t, created.DataAtualizacao.IsZero())

		firstID = created.ID
	})

	t.Run("duplicate plate maps to conflict", func(t *testing.T) {
		_, err := store.CreateVehicle(ctx, newVehicleFixture("ABC1D23"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, goerror.ErrConflict))
	})

	t.Run("get by id", func(t *testing.T) {
		vehicle, err := store.GetVehicleByID(ctx, firstID)
		require.NoError(t, err)
		assert.Equal(t, "Volkswagen Gol", vehicle.Modelo)
	})

	t.Run("get by unknown id maps to not found", func(t *testing.T) {
		_, err := store.GetVehicleByID(ctx, firstID+1000)
		require.Error(t, err)
		assert.True(t, errors.Is(err, goerror.ErrNotFound))
	})

	t.Run("get by plate", func(t *testing.T) {
		vehicle, err := store.GetVehicleByPlaca(ctx, "ABC1D23")
		require.NoError(t, err)
		assert.Equal(t, firstID, vehicle.ID)

		_, err = store.GetVehicleByPlaca(ctx, "ZZZ0Z00")
		assert.True(t, errors.Is(err, goerror.ErrNotFound))
	})

	t.Run("list returns every record", func(t *testing.T) {
		_, err := store.CreateVehicle(ctx, newVehicleFixture("XYZ9K88"))
		require.NoError(t, err)

		vehicles, err := store.GetVehicleList(ctx)
		require.NoError(t, err)
		assert.Len(t, vehicles, 2)
	})

	t.Run("update replaces fields and touches data_atualizacao", func(t *testing.T) {
		before, err := store.GetVehicleByID(ctx, firstID)
		require.NoError(t, err)

		updated, err := store.UpdateVehicle(ctx, firstID, entity.UpdateVehicle{
			Placa:   "ABC1D23",
			Chassi:  before.Chassi,
			Renavam: before.Renavam,
			Modelo:  "Volkswagen Gol 1.6",
			Ano:     2016,
		})
		require.NoError(t, err)

		assert.Equal(t, "Volkswagen Gol 1.6", updated.Modelo)
		assert.Equal(t, 2016, updated.Ano)
		assert.Equal(t, before.DataCriacao, updated.DataCriacao)
		assert.True(t, updated.DataAtualizacao.After(before.DataAtualizacao))
	})

	t.Run("update to taken plate maps to conflict", func(t *testing.T) {
		_, err := store.UpdateVehicle(ctx, firstID, entity.UpdateVehicle{
			Placa:   "XYZ9K88",
			Chassi:  "9BWZZZ377VT004251",
			Renavam: "12345678901",
			Modelo:  "Volkswagen Gol",
			Ano:     2015,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, goerror.ErrConflict))
	})

	t.Run("update unknown id maps to not found", func(t *testing.T) {
		_, err := store.UpdateVehicle(ctx, firstID+1000, entity.UpdateVehicle{
			Placa:   "QQQ1Q11",
			Chassi:  "9BWZZZ377VT004251",
			Renavam: "12345678901",
			Modelo:  "Volkswagen Gol",
			Ano:     2015,
		})
		assert.True(t, errors.Is(err, goerror.ErrNotFound))
	})

	t.Run("availability toggle leaves other fields alone", func(t *testing.T) {
		updated, err := store.UpdateVehicleAvailability(ctx, firstID, false)
		require.NoError(t, err)

		assert.False(t, updated.Disponivel)
		assert.Equal(t, "Volkswagen Gol 1.6", updated.Modelo)
	})

	t.Run("delete reports removal once", func(t *testing.T) {
		deleted, err := store.DeleteVehicle(ctx, firstID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteVehicle(ctx, firstID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = store.GetVehicleByID(ctx, firstID)
		assert.True(t, errors.Is(err, goerror.ErrNotFound))
	})
}
