// Package entity holds the domain types of the vehicle module.
package entity

import "time"

// Vehicle is a fleet registration record. The plate (Placa) is the natural
// uniqueness key; ID and DataCriacao are store-assigned and immutable.
type Vehicle struct {
	ID              int64
	Placa           string
	Chassi          string
	Renavam         string
	Modelo          string
	Ano             int
	Disponivel      bool
	DataCriacao     time.Time
	DataAtualizacao time.Time
}

// NewVehicle carries the caller-supplied fields of a vehicle to be created.
type NewVehicle struct {
	Placa   string
	Chassi  string
	Renavam string
	Modelo  string
	Ano     int
}

// UpdateVehicle carries the replacement fields for a full-record update.
// ID, availability, and timestamps are never replaced through it.
type UpdateVehicle struct {
	Placa   string
	Chassi  string
	Renavam string
	Modelo  string
	Ano     int
}
