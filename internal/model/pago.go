package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// Pago is appended to an open pedido. Append-only: no update or delete path.
type Pago struct {
	ID         uint            `gorm:"primaryKey"`
	PedidoID   uint            `gorm:"index;not null"`
	MetodoPago string          `gorm:"type:varchar(20);not null"`
	Monto      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaHora  time.Time       `gorm:"autoCreateTime"`
}

func (Pago) TableName() string { return "pagos" }
