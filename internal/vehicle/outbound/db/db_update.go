package db

import (
	"context"

	"github.com/frotahub/frota/internal/pkg/sqldb"
	"github.com/frotahub/frota/internal/vehicle/entity"
)

// UpdateVehicle replaces the caller-editable fields of the record and returns
// the refreshed row. Identity, availability, and data_criacao stay untouched.
func (s *DB) UpdateVehicle(ctx context.Context, id int64, in entity.UpdateVehicle) (_ *entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "UpdateVehicle")
	defer func() { s.endSpan(span, err) }()

	row, err := s.col.Update(ctx, id, sqldb.Fields{
		"placa":            in.Placa,
		"chassi":           in.Chassi,
		"renavam":          in.Renavam,
		"modelo":           in.Modelo,
		"ano":              int32(in.Ano),
		"data_atualizacao": s.clock.Now(),
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return row.toEntity(), nil
}

// UpdateVehicleAvailability sets the availability flag directly, bypassing the
// full-record update, and returns the refreshed row.
func (s *DB) UpdateVehicleAvailability(ctx context.Context, id int64, disponivel bool) (_ *entity.Vehicle, err error) {
	ctx, span := s.startSpan(ctx, "UpdateVehicleAvailability")
	defer func() { s.endSpan(span, err) }()

	row, err := s.col.Update(ctx, id, sqldb.Fields{
		"disponivel":       disponivel,
		"data_atualizacao": s.clock.Now(),
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return row.toEntity(), nil
}
