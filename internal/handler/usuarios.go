package handler

import (
	"net/http"

	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/middleware"
	"github.com/larrykatula12/restaurante/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar GET /usuarios/ — admin only.
func (h *UsuariosHandler) Listar(c *gin.Context) {
	skip, limit, ok := bindListFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /usuarios/:id — self or admin.
func (h *UsuariosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /usuarios/ — admin only.
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /usuarios/:id — self or admin; rol changes admin only.
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /usuarios/:id — admin only, hard delete.
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
