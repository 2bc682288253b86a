package db

import (
	"context"

	"github.com/frotahub/frota/internal/vehicle/entity"
)

func (s *DB) GetVehicleList(ctx context.Context) (_ []entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "GetVehicleList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.col.All(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	vehicles := make([]entity.Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, *row.toEntity())
	}
	return vehicles, nil
}

func (s *DB) GetVehicleByID(ctx context.Context, id int64) (_ *entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "GetVehicleByID")
	defer func() { s.endSpan(span, err) }()

	row, err := s.col.Get(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	return row.toEntity(), nil
}

func (s *DB) GetVehicleByPlaca(ctx context.Context, placa string) (_ *entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "GetVehicleByPlaca")
	defer func() { s.endSpan(span, err) }()

	row, err := s.col.One(ctx, "SELECT * FROM "+vehicleTable+" WHERE placa = $1", placa)
	if err != nil {
		return nil, s.mapError(err)
	}

	return row.toEntity(), nil
}
