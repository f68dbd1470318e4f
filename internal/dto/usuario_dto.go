package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	NombreCompleto string `json:"nombre_completo" validate:"required,min=2,max=100"`
	Email          string `json:"email"           validate:"required,email"`
	Contrasena     string `json:"contrasena"      validate:"required,min=8"`
	Rol            string `json:"rol"             validate:"required,oneof=admin empleado"`
}

// ActualizarUsuarioRequest carries partial-update semantics: only populated
// fields are applied.
type ActualizarUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email"           validate:"omitempty,email"`
	Contrasena     *string `json:"contrasena"      validate:"omitempty,min=8"`
	Rol            *string `json:"rol"             validate:"omitempty,oneof=admin empleado"`
	Activo         *bool   `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	IDUsuario      uint   `json:"id_usuario"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Rol            string `json:"rol"`
	Activo         bool   `json:"activo"`
	FechaCreacion  string `json:"fecha_creacion"`
}
