package dto

// RegistrarNivelRequest submits one fuel-level reading for a dispenser.
// Percentage bounds are a domain rule checked by the use case, not a binding
// rule, so an out-of-range value reports the canonical error.
type RegistrarNivelRequest struct {
	SurtidorID string  `json:"dispenserId" validate:"required,uuid"`
	Percentage float64 `json:"percentage"`
}

type NivelResponse struct {
	ID         string  `json:"id"`
	SurtidorID string  `json:"dispenserId"`
	Percentage float64 `json:"percentage"`
	RecordedAt string  `json:"recordedAt"`
}

type CrearSurtidorRequest struct {
	Number int `json:"number" validate:"required,min=1"`
}

type SurtidorResponse struct {
	ID           string `json:"id"`
	GasolineraID string `json:"stationId"`
	Number       int    `json:"number"`
}
