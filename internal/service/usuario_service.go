package service

import (
	"context"
	"errors"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioService implements the account operations. Methods that depend on the
// caller's identity receive the resolved actor so the self-vs-admin permission
// split happens in one place.
type UsuarioService interface {
	Listar(ctx context.Context, skip, limit int) ([]dto.UsuarioResponse, error)
	ObtenerPorID(ctx context.Context, actor *model.Usuario, id uint) (*dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, actor *model.Usuario, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func mapUsuario(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IDUsuario:      u.ID,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Rol:            u.Rol,
		Activo:         u.Activo,
		FechaCreacion:  u.FechaCreacion.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *usuarioService) Listar(ctx context.Context, skip, limit int) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = mapUsuario(&users[i])
	}
	return resp, nil
}

func (s *usuarioService) ObtenerPorID(ctx context.Context, actor *model.Usuario, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Usuario no encontrado")
	}
	// Si no es admin, solo puede verse a sí mismo
	if !actor.EsAdmin() && actor.ID != id {
		return nil, apierror.NewForbidden("No tienes permiso para ver este usuario")
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.New("El email ya está registrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Rol:            req.Rol,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, actor *model.Usuario, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Usuario no encontrado")
	}

	// Permisos: admin puede modificar cualquiera; empleado solo a sí mismo
	if !actor.EsAdmin() && actor.ID != id {
		return nil, apierror.NewForbidden("No tienes permiso para modificar este usuario")
	}
	// Solo un admin puede cambiar el rol
	if req.Rol != nil && !actor.EsAdmin() {
		return nil, apierror.NewForbidden("Solo un administrador puede cambiar el rol")
	}

	if req.NombreCompleto != nil {
		user.NombreCompleto = *req.NombreCompleto
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err == nil && existing.ID != id {
			return nil, apierror.New("El email ya está en uso")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Contrasena != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasena), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Rol != nil {
		user.Rol = *req.Rol
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

// Eliminar removes the row entirely. Productos are soft-deleted instead.
func (s *usuarioService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NewNotFound("Usuario no encontrado")
	}
	return s.repo.Delete(ctx, id)
}
