package inbound

import (
	"github.com/frotahub/frota/internal/pkg/goerror"
	"github.com/frotahub/frota/internal/pkg/router"
	"github.com/frotahub/frota/internal/vehicle/entity"
	"github.com/frotahub/frota/internal/vehicle/usecase"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for the vehicle fleet registry.
type HTTPEndpoint struct {
	uc uc
}

// VehicleList returns every registered vehicle.
// @Summary List vehicles
// @Description Returns all registered vehicles.
// @Tags Vehicles
// @Produce json
// @Success 200 {object} router.successResponse{data=[]VehicleResponse} "Vehicle list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles [get]
func (h *HTTPEndpoint) VehicleList(r *router.Request) (any, error) {
	vehicles, err := h.uc.VehicleList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(vehicles, func(v entity.Vehicle, _ int) VehicleResponse {
		return newVehicleResponse(&v)
	}), nil
}

// VehicleDetail returns one vehicle by id.
// @Summary Get vehicle
// @Description Returns the vehicle with the given id.
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle id"
// @Success 200 {object} router.successResponse{data=VehicleResponse} "Vehicle"
// @Failure 400 {object} router.errorResponse "Invalid id"
// @Failure 404 {object} router.errorResponse "Vehicle not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles/{id} [get]
func (h *HTTPEndpoint) VehicleDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	vehicle, err := h.uc.VehicleDetail(r.Context(), usecase.VehicleDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newVehicleResponse(vehicle), nil
}

// VehicleCreate registers a new vehicle.
// @Summary Register vehicle
// @Description Creates a new vehicle. The plate must not be registered yet.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle payload"
// @Success 201 {object} router.successResponse{data=VehicleResponse} "Registered vehicle"
// @Failure 400 {object} router.errorResponse "Invalid request body or validation error"
// @Failure 409 {object} router.errorResponse "Plate already registered"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles [post]
func (h *HTTPEndpoint) VehicleCreate(r *router.Request) (any, error) {
	var req VehicleRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	vehicle, err := h.uc.VehicleCreate(r.Context(), usecase.VehicleCreateInput{
		Placa:   req.Placa,
		Chassi:  req.Chassi,
		Renavam: req.Renavam,
		Modelo:  req.Modelo,
		Ano:     req.Ano,
	})
	if err != nil {
		return nil, err
	}

	return VehicleCreateResponse{newVehicleResponse(vehicle)}, nil
}

// VehicleUpdate replaces the editable fields of a vehicle.
// @Summary Update vehicle
// @Description Replaces plate, chassis, registration, model, and year of the vehicle.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle id"
// @Param request body VehicleRequest true "Vehicle payload"
// @Success 200 {object} router.successResponse{data=VehicleResponse} "Updated vehicle"
// @Failure 400 {object} router.errorResponse "Invalid request body or validation error"
// @Failure 404 {object} router.errorResponse "Vehicle not found"
// @Failure 409 {object} router.errorResponse "Plate already registered"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles/{id} [put]
func (h *HTTPEndpoint) VehicleUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req VehicleRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	vehicle, err := h.uc.VehicleUpdate(r.Context(), usecase.VehicleUpdateInput{
		ID:      id,
		Placa:   req.Placa,
		Chassi:  req.Chassi,
		Renavam: req.Renavam,
		Modelo:  req.Modelo,
		Ano:     req.Ano,
	})
	if err != nil {
		return nil, err
	}

	return newVehicleResponse(vehicle), nil
}

// VehicleDelete removes a vehicle.
// @Summary Delete vehicle
// @Description Hard-deletes the vehicle with the given id.
// @Tags Vehicles
// @Param id path int true "Vehicle id"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid id"
// @Failure 404 {object} router.errorResponse "Vehicle not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles/{id} [delete]
func (h *HTTPEndpoint) VehicleDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	deleted, err := h.uc.VehicleDelete(r.Context(), usecase.VehicleDeleteInput{ID: id})
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, goerror.NewBusiness("vehicle not found", goerror.CodeNotFound)
	}

	return nil, nil
}

// VehicleAvailability toggles the availability flag of a vehicle.
// @Summary Update vehicle availability
// @Description Sets only the availability flag of the vehicle.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle id"
// @Param request body AvailabilityRequest true "Availability payload"
// @Success 200 {object} router.successResponse{data=VehicleResponse} "Updated vehicle"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Vehicle not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/vehicles/{id}/availability [patch]
func (h *HTTPEndpoint) VehicleAvailability(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req AvailabilityRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	vehicle, err := h.uc.VehicleAvailability(r.Context(), usecase.VehicleAvailabilityInput{
		ID:         id,
		Disponivel: req.Disponivel,
	})
	if err != nil {
		return nil, err
	}

	return newVehicleResponse(vehicle), nil
}
