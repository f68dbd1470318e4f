package model

import "time"

// Roles del sistema.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Usuario stores staff accounts with role-based access.
// Rol: "admin" | "empleado"
type Usuario struct {
	ID             uint    `gorm:"primaryKey"`
	NombreCompleto string  `gorm:"size:100;not null"`
	Email          string  `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash   string  `gorm:"size:255;not null"`
	Rol            string  `gorm:"type:varchar(20);not null"`
	Activo         bool    `gorm:"not null;default:true"`
	FechaCreacion  time.Time `gorm:"autoCreateTime"`

	Pedidos []Pedido `gorm:"foreignKey:UsuarioID"`
}

func (Usuario) TableName() string { return "usuarios" }

// EsAdmin reports whether the account holds the administrator role.
func (u *Usuario) EsAdmin() bool { return u.Rol == RolAdmin }
