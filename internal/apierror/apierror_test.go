package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("campo requerido"), http.StatusUnprocessableEntity},
		{Duplicate("ya existe"), http.StatusConflict},
		{NotFound("no encontrado"), http.StatusNotFound},
		{OutOfRange("fuera de rango"), http.StatusBadRequest},
		{InvalidSchedule("horario inválido"), http.StatusBadRequest},
		{Unavailable("no disponible"), http.StatusBadRequest},
		{InsufficientFuel("sin combustible"), http.StatusBadRequest},
		{Unauthorized("credenciales"), http.StatusUnauthorized},
		{Storage(errors.New("boom"), "fallo"), http.StatusInternalServerError},
		{errors.New("desconocido"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, StatusOf(c.err), c.err.Error())
	}
}

func TestStatusOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("contexto: %w", Duplicate("ya existe"))
	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
}

func TestValidationWrap(t *testing.T) {
	cause := errors.New("El nombre es requerido")
	err := ValidationWrap("Datos inválidos", cause)
	assert.Equal(t, "Datos inválidos: El nombre es requerido", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindValidation))
}

func TestIsKind(t *testing.T) {
	err := NotFound("no está")
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindDuplicate))
	assert.False(t, IsKind(errors.New("otro"), KindNotFound))
}
