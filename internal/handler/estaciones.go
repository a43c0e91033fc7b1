package handler

import (
	"net/http"

	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EstacionesHandler struct{ svc service.GasolineraService }

func NewEstacionesHandler(svc service.GasolineraService) *EstacionesHandler {
	return &EstacionesHandler{svc: svc}
}

// Registrar handles the owner-registration flow (one station per user).
func (h *EstacionesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarGasolineraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Gasolinera registrada exitosamente", resp)
}

// Crear handles the full-record flow keyed by station number and manager CI.
func (h *EstacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearGasolineraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Gasolinera creada exitosamente", resp)
}

func (h *EstacionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *EstacionesHandler) Disponibles(c *gin.Context) {
	resp, err := h.svc.Disponibles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *EstacionesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *EstacionesHandler) ObtenerPorManagerCI(c *gin.Context) {
	ci, ok := parseIDParam(c, "ci")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorManagerCI(c.Request.Context(), ci)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *EstacionesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	var req dto.ActualizarGasolineraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Gasolinera actualizada", resp)
}

func (h *EstacionesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
