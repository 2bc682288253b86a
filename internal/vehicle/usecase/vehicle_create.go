package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

type VehicleCreateInput struct {
	Placa   string `validate:"required,plate,max=7"`
	Chassi  string `validate:"required,max=17"`
	Renavam string `validate:"required,max=11"`
	Modelo  string `validate:"required,max=100"`
	Ano     int    `validate:"required,gt=0"`
}

func (s *Usecase) VehicleCreate(ctx context.Context, in VehicleCreateInput) (*entity.Vehicle, error) {
	ctx, span := s.startSpan(ctx, "VehicleCreate")
	defer span.End()

	in.Placa = strings.ToUpper(strings.TrimSpace(in.Placa))
	in.Chassi = strings.TrimSpace(in.Chassi)
	in.Renavam = strings.TrimSpace(in.Renavam)
	in.Modelo = strings.TrimSpace(in.Modelo)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	existing, err := s.repoDB.GetVehicleByPlaca(ctx, in.Placa)
	if err == nil && existing != nil {
		slog.WarnContext(ctx, "vehicle plate is already registered", "placa", in.Placa)
		return nil, goerror.NewBusiness("vehicle with that plate already exists", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get vehicle by plate", "placa", in.Placa, "error", err)
		return nil, goerror.NewServer(err)
	}

	vehicle, err := s.repoDB.CreateVehicle(ctx, entity.NewVehicle{
		Placa:   in.Placa,
		Chassi:  in.Chassi,
		Renavam: in.Renavam,
		Modelo:  in.Modelo,
		Ano:     in.Ano,
	})
	if errors.Is(err, goerror.ErrConflict) {
		// Lost a check-then-act race against a concurrent create.
		return nil, goerror.NewBusiness("vehicle with that plate already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create vehicle", "placa", in.Placa, "error", err)
		return nil, goerror.NewServer(err)
	}

	return vehicle, nil
}
