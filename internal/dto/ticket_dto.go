package dto

import "github.com/shopspring/decimal"

type CrearTicketRequest struct {
	StationID string `json:"stationId" validate:"required,uuid"`
	CI        string `json:"ci"        validate:"required"`
	Plate     string `json:"plate"     validate:"required"`
	// RequestedLiters is optional; zero means no fuel-level check applies.
	RequestedLiters decimal.Decimal `json:"requestedLiters"`
}

type TicketResponse struct {
	ID              string          `json:"id"`
	CI              string          `json:"ci"`
	Plate           string          `json:"plate"`
	TicketNumber    int             `json:"ticketNumber"`
	StationID       string          `json:"stationId"`
	StationName     string          `json:"stationName"`
	RequestedLiters decimal.Decimal `json:"requestedLiters"`
	CreatedAt       string          `json:"createdAt"`
}
