// Package vehicle wires the vehicle module: record store, business usecases,
// and HTTP endpoints.
package vehicle

import (
	"github.com/frotahub/frota/internal/pkg/clock"
	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/pkg/router"
	"github.com/frotahub/frota/internal/pkg/validator"
	"github.com/frotahub/frota/internal/vehicle/inbound"
	"github.com/frotahub/frota/internal/vehicle/outbound/db"
	"github.com/frotahub/frota/internal/vehicle/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	store := db.NewDB(dep.DBConn, dep.Clock, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     store,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
