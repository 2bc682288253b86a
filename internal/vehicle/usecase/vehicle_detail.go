package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

type VehicleDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) VehicleDetail(ctx context.Context, in VehicleDetailInput) (*entity.Vehicle, error) {
	ctx, span := s.startSpan(ctx, "VehicleDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	vehicle, err := s.repoDB.GetVehicleByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("vehicle not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get vehicle by id", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return vehicle, nil
}
