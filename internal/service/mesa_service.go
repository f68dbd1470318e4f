package service

import (
	"context"
	"errors"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"gorm.io/gorm"
)

type MesaService interface {
	Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error)
	Listar(ctx context.Context) ([]dto.MesaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MesaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error)
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func mapMesa(m *model.Mesa) dto.MesaResponse {
	return dto.MesaResponse{IDMesa: m.ID, NumeroMesa: m.NumeroMesa, Estado: m.Estado}
}

func (s *mesaService) Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error) {
	if _, err := s.repo.FindByNumero(ctx, req.NumeroMesa); err == nil {
		return nil, apierror.New("Ya existe una mesa con ese número")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = model.MesaLibre
	}
	m := &model.Mesa{NumeroMesa: req.NumeroMesa, Estado: estado}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := mapMesa(m)
	return &resp, nil
}

func (s *mesaService) Listar(ctx context.Context) ([]dto.MesaResponse, error) {
	mesas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MesaResponse, len(mesas))
	for i := range mesas {
		resp[i] = mapMesa(&mesas[i])
	}
	return resp, nil
}

func (s *mesaService) ObtenerPorID(ctx context.Context, id uint) (*dto.MesaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Mesa no encontrada")
	}
	resp := mapMesa(m)
	return &resp, nil
}

func (s *mesaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Mesa no encontrada")
	}
	if req.Estado != nil {
		m.Estado = *req.Estado
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := mapMesa(m)
	return &resp, nil
}
