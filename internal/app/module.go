package app

import (
	"log/slog"
	"os"

	"github.com/frotahub/frota/internal/vehicle"
)

func (a *App) initModules() {
	if err := vehicle.New(vehicle.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module vehicle", "error", err)
		os.Exit(1)
	}
}
