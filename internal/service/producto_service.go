package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"github.com/redis/go-redis/v9"
)

const productoCacheTTL = 4 * time.Hour

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uint) error
}

// productoService reads single products through a redis cache; rdb may be nil
// (unit tests), in which case every read goes to the repository.
type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func mapProducto(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		IDProducto:    p.ID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		Categoria:     p.Categoria,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func productoCacheKey(id uint) string { return fmt.Sprintf("producto:%d", id) }

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Categoria:   req.Categoria,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, skip, limit int) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListActivos(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = mapProducto(&productos[i])
	}
	return resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	// Try redis first — best effort, a cache failure falls through to the DB
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, productoCacheKey(id)).Bytes(); err == nil {
			var resp dto.ProductoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Producto no encontrado")
	}
	resp := mapProducto(p)

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, productoCacheKey(id), b, productoCacheTTL).Err()
		}
	}
	return &resp, nil
}

// Actualizar applies only the supplied fields (partial update semantics) and
// invalidates the cache entry.
func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Producto no encontrado")
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Categoria != nil {
		p.Categoria = req.Categoria
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	resp := mapProducto(p)
	return &resp, nil
}

// Desactivar soft-deletes: the row survives for historical line items.
func (s *productoService) Desactivar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NewNotFound("Producto no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *productoService) invalidate(ctx context.Context, id uint) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, productoCacheKey(id)).Err()
	}
}
