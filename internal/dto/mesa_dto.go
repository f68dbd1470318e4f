package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMesaRequest struct {
	NumeroMesa int    `json:"numero_mesa" validate:"required,min=1"`
	Estado     string `json:"estado"      validate:"omitempty,oneof=libre ocupada reservada"`
}

type ActualizarMesaRequest struct {
	Estado *string `json:"estado" validate:"omitempty,oneof=libre ocupada reservada"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MesaResponse struct {
	IDMesa     uint   `json:"id_mesa"`
	NumeroMesa int    `json:"numero_mesa"`
	Estado     string `json:"estado"`
}
