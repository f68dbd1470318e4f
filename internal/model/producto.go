package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Soft-deleted via Activo=false so historical
// line items keep a valid reference.
type Producto struct {
	ID            uint            `gorm:"primaryKey"`
	Nombre        string          `gorm:"size:100;not null"`
	Descripcion   *string         `gorm:"type:text"`
	Precio        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categoria     *string         `gorm:"size:50"`
	Activo        bool            `gorm:"not null;default:true"`
	FechaCreacion time.Time       `gorm:"autoCreateTime"`

	Detalles []DetallePedido `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }
