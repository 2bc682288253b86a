package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/pkg/validator"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("connection refused")

type fakeRepo struct {
	vehicles map[int64]entity.Vehicle
	nextID   int64
	failing  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{vehicles: make(map[int64]entity.Vehicle)}
}

func (f *fakeRepo) seed(v entity.Vehicle) entity.Vehicle {
	f.nextID++
	v.ID = f.nextID
	f.vehicles[v.ID] = v
	return v
}

func (f *fakeRepo) GetVehicleList(context.Context) ([]entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	out := make([]entity.Vehicle, 0, len(f.vehicles))
	for id := int64(1); id <= f.nextID; id++ {
		if v, ok := f.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetVehicleByID(_ context.Context, id int64) (*entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	v, ok := f.vehicles[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &v, nil
}

func (f *fakeRepo) GetVehicleByPlaca(_ context.Context, placa string) (*entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	for _, v := range f.vehicles {
		if v.Placa == placa {
			return &v, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) CreateVehicle(_ context.Context, in entity.NewVehicle) (*entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	v := f.seed(entity.Vehicle{
		Placa:           in.Placa,
		Chassi:          in.Chassi,
		Renavam:         in.Renavam,
		Modelo:          in.Modelo,
		Ano:             in.Ano,
		Disponivel:      true,
		DataCriacao:     time.Now(),
		DataAtualizacao: time.Now(),
	})
	return &v, nil
}

func (f *fakeRepo) UpdateVehicle(_ context.Context, id int64, in entity.UpdateVehicle) (*entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	v, ok := f.vehicles[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	v.Placa = in.Placa
	v.Chassi = in.Chassi
	v.Renavam = in.Renavam
	v.Modelo = in.Modelo
	v.Ano = in.Ano
	v.DataAtualizacao = time.Now()
	f.vehicles[id] = v
	return &v, nil
}

func (f *fakeRepo) UpdateVehicleAvailability(_ context.Context, id int64, disponivel bool) (*entity.Vehicle, error) {
	if f.failing {
		return nil, errStorage
	}

	v, ok := f.vehicles[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	v.Disponivel = disponivel
	v.DataAtualizacao = time.Now()
	f.vehicles[id] = v
	return &v, nil
}

func (f *fakeRepo) DeleteVehicle(_ context.Context, id int64) (bool, error) {
	if f.failing {
		return false, errStorage
	}

	if _, ok := f.vehicles[id]; !ok {
		return false, nil
	}
	delete(f.vehicles, id)
	return true, nil
}

func newTestUsecase(t *testing.T, repo *fakeRepo) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func requireErrorCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}

func validCreateInput() VehicleCreateInput {
	return VehicleCreateInput{
		Placa:   "ABC1D23",
		Chassi:  "9BWZZZ377VT004251",
		Renavam: "12345678901",
		Modelo:  "Volkswagen Gol",
		Ano:     2015,
	}
}
