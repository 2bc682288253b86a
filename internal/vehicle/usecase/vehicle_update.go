package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

type VehicleUpdateInput struct {
	ID      int64  `validate:"required,gt=0"`
	Placa   string `validate:"required,plate,max=7"`
	Chassi  string `validate:"required,max=17"`
	Renavam string `validate:"required,max=11"`
	Modelo  string `validate:"required,max=100"`
	Ano     int    `validate:"required,gt=0"`
}

func (s *Usecase) VehicleUpdate(ctx context.Context, in VehicleUpdateInput) (*entity.Vehicle, error) {
	ctx, span := s.startSpan(ctx, "VehicleUpdate")
	defer span.End()

	in.Placa = strings.ToUpper(strings.TrimSpace(in.Placa))
	in.Chassi = strings.TrimSpace(in.Chassi)
	in.Renavam = strings.TrimSpace(in.Renavam)
	in.Modelo = strings.TrimSpace(in.Modelo)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	current, err := s.repoDB.GetVehicleByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("vehicle not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get vehicle by id", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// The uniqueness check runs only when the plate actually changes, so
	// keeping the same plate never conflicts with the record itself.
	if in.Placa != current.Placa {
		existing, err := s.repoDB.GetVehicleByPlaca(ctx, in.Placa)
		if err == nil && existing != nil {
			slog.WarnContext(ctx, "vehicle plate is already registered", "placa", in.Placa)
			return nil, goerror.NewBusiness("vehicle with that plate already exists", goerror.CodeConflict)
		}
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to repo get vehicle by plate", "placa", in.Placa, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	vehicle, err := s.repoDB.UpdateVehicle(ctx, in.ID, entity.UpdateVehicle{
		Placa:   in.Placa,
		Chassi:  in.Chassi,
		Renavam: in.Renavam,
		Modelo:  in.Modelo,
		Ano:     in.Ano,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("vehicle not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("vehicle with that plate already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update vehicle", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return vehicle, nil
}
