package handler

import (
	"net/http"

	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketsHandler struct{ svc service.TicketService }

func NewTicketsHandler(svc service.TicketService) *TicketsHandler {
	return &TicketsHandler{svc: svc}
}

func (h *TicketsHandler) Crear(c *gin.Context) {
	var req dto.CrearTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Ticket creado exitosamente", resp)
}

func (h *TicketsHandler) ObtenerPorID(c *gin.Context) {
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

func (h *TicketsHandler) ListarPorCI(c *gin.Context) {
	ci, ok := parseIDParam(c, "ci")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorCI(c.Request.Context(), ci)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

func (h *TicketsHandler) ListarPorEstacion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPorEstacion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

// ReciboPDF streams the receipt PDF, rendering it on demand if the worker has
// not produced it yet.
func (h *TicketsHandler) ReciboPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("ID inválido"))
		return
	}
	path, err := h.svc.ReciboPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
