package model

import (
	"regexp"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var plateRe = regexp.MustCompile(`^[A-Z0-9-]{1,10}$`)

// Ticket is a service request issued by a driver against a station.
// Numbered sequentially per station, immutable once created.
type Ticket struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CI string    `gorm:"index;not null"`
	// Plate is normalized to uppercase before validation and storage.
	Plate        string    `gorm:"not null"`
	TicketNumber int       `gorm:"not null;uniqueIndex:idx_station_ticket_number"`
	StationID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_station_ticket_number;index"`
	// StationName is a denormalized snapshot taken at creation time.
	StationName     string          `gorm:"not null"`
	RequestedLiters decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time
}

// Validate enforces the field invariants, first violation wins.
func (t *Ticket) Validate() error {
	if t.CI == "" || !numericRe.MatchString(t.CI) {
		return apierror.Validation("El CI es requerido y debe contener solo números")
	}
	if !plateRe.MatchString(t.Plate) {
		return apierror.Validation("La matrícula es requerida y debe tener formato válido (letras mayúsculas, números y guiones)")
	}
	if t.TicketNumber < 1 {
		return apierror.Validation("El número de ticket es requerido y debe ser mayor a 0")
	}
	if t.StationID == uuid.Nil {
		return apierror.Validation("El ID de la estación es requerido")
	}
	if t.StationName == "" {
		return apierror.Validation("El nombre de la estación es requerido")
	}
	if t.RequestedLiters.IsNegative() {
		return apierror.Validation("Los litros solicitados no pueden ser negativos")
	}
	return nil
}
