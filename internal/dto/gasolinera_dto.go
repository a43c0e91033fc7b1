package dto

import "github.com/shopspring/decimal"

// RegistrarGasolineraRequest is the owner-registration contract: one station
// per user and per address, schedule validated before the entity is built.
type RegistrarGasolineraRequest struct {
	UserID    string `json:"userId"    validate:"required,uuid"`
	Name      string `json:"name"      validate:"required"`
	Address   string `json:"address"   validate:"required"`
	OpenTime  string `json:"openTime"  validate:"required"`
	CloseTime string `json:"closeTime" validate:"required"`
}

// CrearGasolineraRequest is the full-record contract keyed by station number
// and manager CI.
type CrearGasolineraRequest struct {
	StationNumber int             `json:"stationNumber" validate:"required,min=1"`
	Name          string          `json:"name"          validate:"required"`
	Address       string          `json:"address"       validate:"required"`
	OpenTime      string          `json:"openTime"      validate:"required"`
	CloseTime     string          `json:"closeTime"     validate:"required"`
	ManagerCI     string          `json:"managerCi"     validate:"required"`
	UserID        string          `json:"userId"        validate:"required,uuid"`
	CurrentLevel  decimal.Decimal `json:"currentLevel"`
	Available     *bool           `json:"available"`
}

// ActualizarGasolineraRequest is a partial update; nil pointers keep the
// stored value. When both times are supplied the schedule is re-validated.
type ActualizarGasolineraRequest struct {
	Name         string           `json:"name"`
	Address      string           `json:"address"`
	OpenTime     string           `json:"openTime"`
	CloseTime    string           `json:"closeTime"`
	CurrentLevel *decimal.Decimal `json:"currentLevel"`
	Available    *bool            `json:"available"`
}

type GasolineraResponse struct {
	ID            string          `json:"id"`
	StationNumber int             `json:"stationNumber"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	OpenTime      string          `json:"openTime"`
	CloseTime     string          `json:"closeTime"`
	ManagerCI     string          `json:"managerCi"`
	UserID        string          `json:"userId"`
	CurrentLevel  decimal.Decimal `json:"currentLevel"`
	Available     bool            `json:"available"`
	TicketCount   int             `json:"ticketCount"`
	CreatedAt     string          `json:"createdAt"`
}
