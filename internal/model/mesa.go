package model

// Estados de mesa.
const (
	MesaLibre     = "libre"
	MesaOcupada   = "ocupada"
	MesaReservada = "reservada"
)

// Mesa is a physical table in the dining room.
type Mesa struct {
	ID         uint   `gorm:"primaryKey"`
	NumeroMesa int    `gorm:"uniqueIndex;not null"`
	Estado     string `gorm:"type:varchar(20);not null;default:'libre'"`

	Pedidos []Pedido `gorm:"foreignKey:MesaID"`
}

func (Mesa) TableName() string { return "mesas" }
