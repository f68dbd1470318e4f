package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetallePedidoRequest struct {
	IDProducto uint `json:"id_producto" validate:"required,min=1"`
	Cantidad   int  `json:"cantidad"    validate:"required,min=1"`
}

type CrearPedidoRequest struct {
	IDMesa   *uint                  `json:"id_mesa"`
	Detalles []DetallePedidoRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ActualizarPedidoRequest allows reassigning the mesa or cancelling an open
// pedido. Detalles and total are never mutable after creation.
type ActualizarPedidoRequest struct {
	IDMesa *uint   `json:"id_mesa"`
	Estado *string `json:"estado" validate:"omitempty,oneof=cancelado"`
}

type CrearPagoRequest struct {
	MetodoPago string          `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta transferencia"`
	Monto      decimal.Decimal `json:"monto"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetallePedidoResponse struct {
	IDDetalle      uint            `json:"id_detalle"`
	IDProducto     uint            `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PagoResponse struct {
	IDPago     uint            `json:"id_pago"`
	IDPedido   uint            `json:"id_pedido"`
	MetodoPago string          `json:"metodo_pago"`
	Monto      decimal.Decimal `json:"monto"`
	FechaHora  string          `json:"fecha_hora"`
}

type PedidoResponse struct {
	IDPedido  uint                    `json:"id_pedido"`
	IDUsuario uint                    `json:"id_usuario"`
	IDMesa    *uint                   `json:"id_mesa"`
	FechaHora string                  `json:"fecha_hora"`
	Total     decimal.Decimal         `json:"total"`
	Estado    string                  `json:"estado"`
	Detalles  []DetallePedidoResponse `json:"detalles"`
	Pagos     []PagoResponse          `json:"pagos"`
}
