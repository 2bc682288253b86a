package usecase

import (
	"context"

	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/pkg/validator"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetVehicleList(ctx context.Context) ([]entity.Vehicle, error)
	GetVehicleByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	GetVehicleByPlaca(ctx context.Context, placa string) (*entity.Vehicle, error)

	CreateVehicle(ctx context.Context, in entity.NewVehicle) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, in entity.UpdateVehicle) (*entity.Vehicle, error)
	UpdateVehicleAvailability(ctx context.Context, id int64, disponivel bool) (*entity.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) (bool, error)
}

// Usecase implements the vehicle business operations.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("vehicle.usecase").Start(ctx, name)
}
