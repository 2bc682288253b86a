package db

import (
	"context"

	"github.com/frotahub/frota/internal/pkg/sqldb"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

// CreateVehicle inserts a new record and returns it re-read from the store so
// the assigned id, availability default, and timestamps are populated.
func (s *DB) CreateVehicle(ctx context.Context, in entity.NewVehicle) (_ *entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "CreateVehicle")
	defer func() { s.endSpan(span, err) }()

	row, err := s.col.Insert(ctx, sqldb.Fields{
		"placa":   in.Placa,
		"chassi":  in.Chassi,
		"renavam": in.Renavam,
		"modelo":  in.Modelo,
		"ano":     int32(in.Ano),
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return row.toEntity(), nil
}
