package handler

import (
	"fmt"
	"net/http"

	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/infra"
	"github.com/larrykatula12/restaurante/internal/middleware"
	"github.com/larrykatula12/restaurante/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc            service.PedidoService
	pdfStoragePath string
}

func NewPedidosHandler(svc service.PedidoService, pdfStoragePath string) *PedidosHandler {
	return &PedidosHandler{svc: svc, pdfStoragePath: pdfStoragePath}
}

// Crear godoc
// @Summary      Crear un pedido
// @Description  Crea el pedido con sus detalles en una transacción. El precio unitario se congela al precio actual del producto y el total es la suma de subtotales.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Detalles del pedido"
// @Success      201  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.Crear(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /pedidos/ — admin sees all, empleado only their own.
func (h *PedidosHandler) Listar(c *gin.Context) {
	skip, limit, ok := bindListFilter(c)
	if !ok {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.Listar(c.Request.Context(), actor, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /pedidos/:id
func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /pedidos/:id — reassign mesa or cancel, only while abierto.
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
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

// Cerrar PUT /pedidos/:id/cerrar — owner or admin; fails unless abierto.
func (h *PedidosHandler) Cerrar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.Cerrar(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarPago POST /pedidos/:id/pagos — owner or admin; fails unless abierto.
func (h *PedidosHandler) AgregarPago(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.CrearPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetCurrentUser(c)
	resp, err := h.svc.AgregarPago(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Recibo GET /pedidos/:id/recibo — renders the pedido as a PDF receipt.
func (h *PedidosHandler) Recibo(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor := middleware.GetCurrentUser(c)
	pedido, err := h.svc.ObtenerModelo(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	filePath, err := infra.GenerateReciboPDF(pedido, h.pdfStoragePath)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="recibo_%d.pdf"`, pedido.ID))
	c.File(filePath)
}
