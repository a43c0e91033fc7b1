package handler

import (
	"net/http"

	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NivelesHandler struct{ svc service.NivelService }

func NewNivelesHandler(svc service.NivelService) *NivelesHandler {
	return &NivelesHandler{svc: svc}
}

func (h *NivelesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarNivelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Nivel registrado exitosamente", resp)
}

func (h *NivelesHandler) Historial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	resp, err := h.svc.Historial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

// UltimoNivel answers with data null when the dispenser has no readings yet.
func (h *NivelesHandler) UltimoNivel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	resp, err := h.svc.UltimoNivel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *NivelesHandler) CrearSurtidor(c *gin.Context) {
	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	var req dto.CrearSurtidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearSurtidor(c.Request.Context(), stationID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Surtidor creado exitosamente", resp)
}

func (h *NivelesHandler) ListarSurtidores(c *gin.Context) {
	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	resp, err := h.svc.ListarSurtidores(c.Request.Context(), stationID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}
