package repository

import (
	"context"

	"github.com/larrykatula12/restaurante/internal/model"

	"gorm.io/gorm"
)

type MesaRepository interface {
	Create(ctx context.Context, m *model.Mesa) error
	FindByID(ctx context.Context, id uint) (*model.Mesa, error)
	FindByNumero(ctx context.Context, numero int) (*model.Mesa, error)
	List(ctx context.Context) ([]model.Mesa, error)
	Update(ctx context.Context, m *model.Mesa) error
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) Create(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mesaRepo) FindByID(ctx context.Context, id uint) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *mesaRepo) FindByNumero(ctx context.Context, numero int) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).Where("numero_mesa = ?", numero).First(&m).Error
	return &m, err
}

func (r *mesaRepo) List(ctx context.Context) ([]model.Mesa, error) {
	var mesas []model.Mesa
	err := r.db.WithContext(ctx).Order("numero_mesa").Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) Update(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Save(m).Error
}
