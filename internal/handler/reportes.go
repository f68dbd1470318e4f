package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/infra"
	"github.com/larrykatula12/restaurante/internal/repository"

	"github.com/gin-gonic/gin"
)

// ReportesHandler serves admin-only exports built straight from the
// repository: a read model, no business mutations involved.
type ReportesHandler struct {
	pedidoRepo repository.PedidoRepository
}

func NewReportesHandler(pedidoRepo repository.PedidoRepository) *ReportesHandler {
	return &ReportesHandler{pedidoRepo: pedidoRepo}
}

// Pedidos GET /reportes/pedidos?fecha=YYYY-MM-DD — XLSX export of the day's
// pedidos, one row per pedido with a summary total.
func (h *ReportesHandler) Pedidos(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", fecha); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro fecha invalido, use YYYY-MM-DD"))
		return
	}

	pedidos, err := h.pedidoRepo.ListByFecha(c.Request.Context(), fecha)
	if err != nil {
		_ = c.Error(err)
		return
	}

	buf, err := infra.GeneratePedidosXLSX(pedidos, fecha)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fileName := fmt.Sprintf("pedidos_%s.xlsx", fecha)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
