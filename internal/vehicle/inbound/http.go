package inbound

import (
	"context"

	"github.com/frotahub/frota/internal/pkg/router"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/frotahub/frota/internal/vehicle/usecase"
)

type uc interface {
	VehicleList(ctx context.Context) ([]entity.Vehicle, error)
	VehicleDetail(ctx context.Context, in usecase.VehicleDetailInput) (*entity.Vehicle, error)
	VehicleCreate(ctx context.Context, in usecase.VehicleCreateInput) (*entity.Vehicle, error)
	VehicleUpdate(ctx context.Context, in usecase.VehicleUpdateInput) (*entity.Vehicle, error)
	VehicleDelete(ctx context.Context, in usecase.VehicleDeleteInput) (bool, error)
	VehicleAvailability(ctx context.Context, in usecase.VehicleAvailabilityInput) (*entity.Vehicle, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/vehicles", end.VehicleList)
	r.GET("/api/vehicles/:id", end.VehicleDetail)
	r.POST("/api/vehicles", end.VehicleCreate)
	r.PUT("/api/vehicles/:id", end.VehicleUpdate)
	r.DELETE("/api/vehicles/:id", end.VehicleDelete)
	r.PATCH("/api/vehicles/:id/availability", end.VehicleAvailability)
}
