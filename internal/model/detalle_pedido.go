package model

import "github.com/shopspring/decimal"

// DetallePedido is one product-and-quantity entry within a pedido.
// PrecioUnitario is frozen at order-creation time, independent of later
// changes to the product's price.
type DetallePedido struct {
	ID             uint            `gorm:"primaryKey"`
	PedidoID       uint            `gorm:"index;not null"`
	ProductoID     uint            `gorm:"index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetallePedido) TableName() string { return "detalle_pedido" }
