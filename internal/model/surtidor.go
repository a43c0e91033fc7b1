package model

import (
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"

	"github.com/google/uuid"
)

// Surtidor is a fuel pump belonging to a station, tracked independently
// for fuel-level readings.
type Surtidor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GasolineraID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_station_dispenser_number"`
	Number       int       `gorm:"not null;uniqueIndex:idx_station_dispenser_number"`
	CreatedAt    time.Time
}

func (s *Surtidor) Validate() error {
	if s.GasolineraID == uuid.Nil {
		return apierror.Validation("El ID de la estación es requerido")
	}
	if s.Number < 1 {
		return apierror.Validation("El número de surtidor debe ser mayor a 0")
	}
	return nil
}
