package inbound

import (
	"net/http"
	"time"

	"github.com/frotahub/frota/internal/vehicle/entity"
)

type VehicleRequest struct {
	Placa   string `json:"placa"`
	Chassi  string `json:"chassi"`
	Renavam string `json:"renavam"`
	Modelo  string `json:"modelo"`
	Ano     int    `json:"ano"`
}

type AvailabilityRequest struct {
	Disponivel bool `json:"disponivel"`
}

type VehicleResponse struct {
	ID              int64     `json:"id" example:"1"`
	Placa           string    `json:"placa" example:"ABC1D23"`
	Chassi          string    `json:"chassi" example:"9BWZZZ377VT004251"`
	Renavam         string    `json:"renavam" example:"12345678901"`
	Modelo          string    `json:"modelo" example:"Volkswagen Gol"`
	Ano             int       `json:"ano" example:"2015"`
	Disponivel      bool      `json:"disponivel" example:"true"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

func newVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		Placa:           v.Placa,
		Chassi:          v.Chassi,
		Renavam:         v.Renavam,
		Modelo:          v.Modelo,
		Ano:             v.Ano,
		Disponivel:      v.Disponivel,
		DataCriacao:     v.DataCriacao,
		DataAtualizacao: v.DataAtualizacao,
	}
}

type VehicleCreateResponse struct {
	VehicleResponse
}

func (VehicleCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (VehicleCreateResponse) Message() string {
	return "vehicle has been registered"
}
