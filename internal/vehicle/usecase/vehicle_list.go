package usecase

import (
	"context"
	"log/slog"

	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

func (s *Usecase) VehicleList(ctx context.Context) ([]entity.Vehicle, error) {
	ctx, span := s.startSpan(ctx, "VehicleList")
	defer span.End()

	vehicles, err := s.repoDB.GetVehicleList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get vehicle list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return vehicles, nil
}
