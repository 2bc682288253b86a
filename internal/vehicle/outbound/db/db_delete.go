package db

import "context"

// DeleteVehicle removes the record and reports whether a row was removed.
func (s *DB) DeleteVehicle(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DeleteVehicle")
	defer func() { s.endSpan(span, err) }()

	deleted, err := s.col.Delete(ctx, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return deleted, nil
}
