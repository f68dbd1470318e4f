package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. Abierto is the initial state; cerrado and cancelado are
// terminal — no line-item or payment mutation is permitted afterwards.
const (
	PedidoAbierto   = "abierto"
	PedidoCerrado   = "cerrado"
	PedidoCancelado = "cancelado"
)

// Pedido is a customer's tab, owned by the staff account that created it and
// optionally tied to a mesa. Total is fixed at creation time.
type Pedido struct {
	ID        uint            `gorm:"primaryKey"`
	UsuarioID uint            `gorm:"index;not null"`
	MesaID    *uint           `gorm:"index"`
	FechaHora time.Time       `gorm:"autoCreateTime"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Estado    string          `gorm:"type:varchar(20);not null;default:'abierto'"`

	Usuario  *Usuario        `gorm:"foreignKey:UsuarioID"`
	Mesa     *Mesa           `gorm:"foreignKey:MesaID"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID"`
	Pagos    []Pago          `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }
