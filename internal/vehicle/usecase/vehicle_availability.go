package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

type VehicleAvailabilityInput struct {
	ID         int64 `validate:"required,gt=0"`
	Disponivel bool
}

// VehicleAvailability toggles the availability flag without touching any other
// field of the record.
func (s *Usecase) VehicleAvailability(ctx context.Context, in VehicleAvailabilityInput) (*entity.Vehicle, error) {
	ctx, span := s.startSpan(ctx, "VehicleAvailability")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	vehicle, err := s.repoDB.UpdateVehicleAvailability(ctx, in.ID, in.Disponivel)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("vehicle not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update vehicle availability", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return vehicle, nil
}
