package db

import (
	"context"
	"errors"
	"time"

	"github.com/frotahub/frota/internal/pkg/clock"
	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/pkg/instrument"
	"github.com/frotahub/frota/internal/pkg/sqldb"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const vehicleTable = "veiculos"

type vehicleRow struct {
	ID              int64     `db:"id"`
	Placa           string    `db:"placa"`
	Chassi          string    `db:"chassi"`
	Renavam         string    `db:"renavam"`
	Modelo          string    `db:"modelo"`
	Ano             int32     `db:"ano"`
	Disponivel      bool      `db:"disponivel"`
	DataCriacao     time.Time `db:"data_criacao"`
	DataAtualizacao time.Time `db:"data_atualizacao"`
}

func (r vehicleRow) toEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:              r.ID,
		Placa:           r.Placa,
		Chassi:          r.Chassi,
		Renavam:         r.Renavam,
		Modelo:          r.Modelo,
		Ano:             int(r.Ano),
		Disponivel:      r.Disponivel,
		DataCriacao:     r.DataCriacao,
		DataAtualizacao: r.DataAtualizacao,
	}
}

// DB is the vehicle record store backed by PostgreSQL.
type DB struct {
	col   *sqldb.Collection[vehicleRow]
	clock clock.Clocker
	ins   instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, clk clock.Clocker, ins instrument.Instrumentation) *DB {
	return &DB{
		col:   sqldb.NewCollection[vehicleRow](conn, vehicleTable),
		clock: clk,
		ins:   ins,
	}
}

// - 23505 unique violation → goerror.ErrConflict
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sqldb.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("vehicle.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
