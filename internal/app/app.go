package app

import (
	"context"
	"net/http"

	"github.com/frotahub/frota/internal/pkg/clock"
	"github.com/frotahub/frota/internal/pkg/config"
	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/pkg/router"
	"github.com/frotahub/frota/internal/pkg/uid"
	"github.com/frotahub/frota/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// resources
	dbConn *pgxpool.Pool

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
