package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarProductosSoloActivos(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	burger, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Hamburguesa", Precio: decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)
	papas, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Papas fritas", Precio: decimal.RequireFromString("3.25"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Desactivar(context.Background(), papas.IDProducto))

	lista, err := svc.Listar(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, burger.IDProducto, lista[0].IDProducto)
}

func TestObtenerProductoInactivoEs404(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Hamburguesa", Precio: decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Desactivar(context.Background(), p.IDProducto))

	_, err = svc.ObtenerPorID(context.Background(), p.IDProducto)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestActualizarProductoParcial(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	desc := "Con queso"
	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Hamburguesa", Descripcion: &desc, Precio: decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("10.75")
	got, err := svc.Actualizar(context.Background(), p.IDProducto, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.True(t, got.Precio.Equal(nuevoPrecio))
	// untouched fields survive a partial update
	assert.Equal(t, "Hamburguesa", got.Nombre)
	require.NotNil(t, got.Descripcion)
	assert.Equal(t, "Con queso", *got.Descripcion)
}

func TestActualizarProductoReactivar(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Hamburguesa", Precio: decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Desactivar(context.Background(), p.IDProducto))

	// the plain update endpoint can flip activo back on
	activo := true
	got, err := svc.Actualizar(context.Background(), p.IDProducto, dto.ActualizarProductoRequest{
		Activo: &activo,
	})
	require.NoError(t, err)
	assert.True(t, got.Activo)

	_, err = svc.ObtenerPorID(context.Background(), p.IDProducto)
	assert.NoError(t, err)
}

func TestDesactivarProductoInexistente(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	err := svc.Desactivar(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
