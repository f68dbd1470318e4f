package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=100"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	Categoria   *string         `json:"categoria"   validate:"omitempty,max=50"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   *string          `json:"categoria"   validate:"omitempty,max=50"`
	Activo      *bool            `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	IDProducto    uint            `json:"id_producto"`
	Nombre        string          `json:"nombre"`
	Descripcion   *string         `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	Categoria     *string         `json:"categoria"`
	Activo        bool            `json:"activo"`
	FechaCreacion string          `json:"fecha_creacion"`
}
