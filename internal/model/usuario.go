package model

import (
	"regexp"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"

	"github.com/google/uuid"
)

// Roles a user can register with.
const (
	RolConductor  = "conductor"
	RolGasolinera = "gasolinera"
)

var (
	numericRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe   = regexp.MustCompile(`^.+@.+\..+$`)
	phoneRe   = regexp.MustCompile(`^[0-9+ -]+$`)
)

// Usuario stores registered drivers and station managers.
// Role: "conductor" | "gasolinera"
type Usuario struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"not null"`
	CI       string    `gorm:"uniqueIndex;not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Phone    string    `gorm:"not null"`
	// Password holds the bcrypt hash, never the plaintext.
	Password  string `gorm:"not null"`
	Role      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate enforces the field invariants. It returns on the first violation,
// so the reported message is deterministic.
func (u *Usuario) Validate() error {
	if u.FullName == "" {
		return apierror.Validation("El nombre completo es requerido")
	}
	if u.CI == "" || !numericRe.MatchString(u.CI) {
		return apierror.Validation("El CI es requerido y debe contener solo números")
	}
	if u.Email == "" || !emailRe.MatchString(u.Email) {
		return apierror.Validation("El correo electrónico es requerido y debe tener un formato válido")
	}
	if u.Phone == "" || !phoneRe.MatchString(u.Phone) {
		return apierror.Validation("El teléfono es requerido y debe tener un formato válido")
	}
	if u.Password == "" {
		return apierror.Validation("La contraseña es requerida")
	}
	if u.Role != RolConductor && u.Role != RolGasolinera {
		return apierror.Validation(`El rol debe ser "conductor" o "gasolinera"`)
	}
	return nil
}
