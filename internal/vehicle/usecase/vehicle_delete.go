package usecase

import (
	"context"
	"log/slog"

	"github.com/frotahub/frota/internal/pkg/goerror"
)

type VehicleDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

// VehicleDelete removes the record (hard delete) and reports whether it
// existed. Deleting an absent id is not a storage failure.
func (s *Usecase) VehicleDelete(ctx context.Context, in VehicleDeleteInput) (bool, error) {
	ctx, span := s.startSpan(ctx, "VehicleDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return false, goerror.NewInvalidInput(err)
	}

	deleted, err := s.repoDB.DeleteVehicle(ctx, in.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete vehicle", "id", in.ID, "error", err)
		return false, goerror.NewServer(err)
	}

	return deleted, nil
}
