package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCrearUsuarioHasheaPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Ana García",
		Email:          "ana@restaurante.com",
		Contrasena:     "secreta123",
		Rol:            model.RolEmpleado,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@restaurante.com", resp.Email)
	assert.True(t, resp.Activo)

	stored := repo.users[resp.IDUsuario]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	req := dto.CrearUsuarioRequest{
		NombreCompleto: "Ana", Email: "ana@restaurante.com",
		Contrasena: "secreta123", Rol: model.RolEmpleado,
	}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
	assert.Len(t, repo.users, 1)
}

func TestObtenerUsuarioPermisos(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	a, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Ana", Email: "ana@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)
	b, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Beto", Email: "beto@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)

	ana := repo.users[a.IDUsuario]

	// own record → ok
	got, err := svc.ObtenerPorID(context.Background(), ana, a.IDUsuario)
	require.NoError(t, err)
	assert.Equal(t, "ana@restaurante.com", got.Email)

	// someone else's record → 403
	_, err = svc.ObtenerPorID(context.Background(), ana, b.IDUsuario)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))

	// admin reads anyone
	admin := &model.Usuario{ID: 99, Rol: model.RolAdmin, Activo: true}
	_, err = svc.ObtenerPorID(context.Background(), admin, b.IDUsuario)
	assert.NoError(t, err)

	_, err = svc.ObtenerPorID(context.Background(), admin, 12345)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestActualizarUsuarioRolSoloAdmin(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	a, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Ana", Email: "ana@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)
	ana := repo.users[a.IDUsuario]

	rolAdmin := model.RolAdmin
	_, err = svc.Actualizar(context.Background(), ana, a.IDUsuario, dto.ActualizarUsuarioRequest{Rol: &rolAdmin})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierror.StatusOf(err))

	// admin can promote
	admin := &model.Usuario{ID: 99, Rol: model.RolAdmin, Activo: true}
	got, err := svc.Actualizar(context.Background(), admin, a.IDUsuario, dto.ActualizarUsuarioRequest{Rol: &rolAdmin})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, got.Rol)
}

func TestActualizarUsuarioEmailColision(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	a, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Ana", Email: "ana@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Beto", Email: "beto@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)

	admin := &model.Usuario{ID: 99, Rol: model.RolAdmin, Activo: true}
	taken := "beto@restaurante.com"
	_, err = svc.Actualizar(context.Background(), admin, a.IDUsuario, dto.ActualizarUsuarioRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))

	// keeping one's own email is not a collision
	propio := "ana@restaurante.com"
	_, err = svc.Actualizar(context.Background(), admin, a.IDUsuario, dto.ActualizarUsuarioRequest{Email: &propio})
	assert.NoError(t, err)
}

func TestEliminarUsuarioEsHardDelete(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	a, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		NombreCompleto: "Ana", Email: "ana@restaurante.com", Contrasena: "secreta123", Rol: model.RolEmpleado,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), a.IDUsuario))
	_, ok := repo.users[a.IDUsuario]
	assert.False(t, ok, "row must be gone, not deactivated")

	err = svc.Eliminar(context.Background(), a.IDUsuario)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
