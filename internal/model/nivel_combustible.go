package model

import (
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"

	"github.com/google/uuid"
)

// NivelCombustible is a timestamped fuel-level percentage reading for one
// dispenser. Append-only time series; the latest reading is the one with the
// maximum RecordedAt.
type NivelCombustible struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SurtidorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Percentage float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

func (n *NivelCombustible) Validate() error {
	if n.Percentage < 0 || n.Percentage > 100 {
		return apierror.OutOfRange("El porcentaje debe estar entre 0 y 100")
	}
	if n.SurtidorID == uuid.Nil {
		return apierror.Validation("Se requiere un ID de surtidor válido")
	}
	return nil
}
