package model

import (
	"regexp"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// horaRe matches zero-padded 24h times ("08:00", "23:59"). Lexicographic
// comparison of two matching strings orders them chronologically.
var horaRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Gasolinera is the canonical station record: schedule, location, fuel level
// and the per-station ticket counter. One station per owning user and per
// physical address — both enforced by unique constraints, so concurrent
// registrations for the same key cannot both land.
type Gasolinera struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// StationNumber and ManagerCI are optional keys left NULL by the owner
	// registration flow; NULLs never collide in their unique indexes.
	StationNumber *int      `gorm:"uniqueIndex"`
	Name          string    `gorm:"not null"`
	Address       string    `gorm:"uniqueIndex;not null"`
	OpenTime      string    `gorm:"type:varchar(5);not null"`
	CloseTime     string    `gorm:"type:varchar(5);not null"`
	ManagerCI     *string   `gorm:"uniqueIndex"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	// CurrentLevel is the station's remaining fuel in liters.
	CurrentLevel decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Available    bool            `gorm:"not null;default:true"`
	// TicketCount only moves forward; incremented atomically on ticket creation.
	TicketCount int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate enforces the field invariants, first violation wins.
// StationNumber and ManagerCI are optional at the entity level: the owner
// registration flow does not supply them, the station-number flow requires
// them through its request contract.
func (g *Gasolinera) Validate() error {
	if g.UserID == uuid.Nil {
		return apierror.Validation("El usuario propietario es requerido")
	}
	if g.Name == "" {
		return apierror.Validation("El nombre de la estación es requerido")
	}
	if g.Address == "" {
		return apierror.Validation("La dirección es requerida")
	}
	if !horaRe.MatchString(g.OpenTime) {
		return apierror.Validation("La hora de apertura debe tener formato HH:MM")
	}
	if !horaRe.MatchString(g.CloseTime) {
		return apierror.Validation("La hora de cierre debe tener formato HH:MM")
	}
	if g.CloseTime <= g.OpenTime {
		return apierror.InvalidSchedule("La hora de cierre debe ser posterior a la hora de apertura")
	}
	if g.StationNumber != nil && *g.StationNumber < 1 {
		return apierror.Validation("El número de estación debe ser mayor a 0")
	}
	if g.ManagerCI != nil && !numericRe.MatchString(*g.ManagerCI) {
		return apierror.Validation("El CI del administrador debe contener solo números")
	}
	if g.CurrentLevel.IsNegative() {
		return apierror.Validation("El nivel de combustible no puede ser negativo")
	}
	if g.TicketCount < 0 {
		return apierror.Validation("El contador de tickets no puede ser negativo")
	}
	return nil
}

// HorarioValido reports whether open < close for a pair of HH:MM strings.
// Used by update flows that change the schedule without rebuilding the entity.
func HorarioValido(openTime, closeTime string) bool {
	return horaRe.MatchString(openTime) && horaRe.MatchString(closeTime) && openTime < closeTime
}
