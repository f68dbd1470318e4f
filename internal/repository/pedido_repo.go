package repository

import (
	"context"
	"time"

	"github.com/larrykatula12/restaurante/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uint) (*model.Pedido, error)
	List(ctx context.Context, usuarioID *uint, skip, limit int) ([]model.Pedido, error)
	ListByFecha(ctx context.Context, fecha string) ([]model.Pedido, error)
	UpdateEstado(ctx context.Context, id uint, estado string) error
	Update(ctx context.Context, p *model.Pedido) error
	CreatePago(ctx context.Context, pago *model.Pago) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

// Create persists the pedido together with its detalles (gorm cascades the
// association inserts) inside the supplied transaction.
func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Create(p).Error
}

// FindByID returns the pedido with detalles and pagos eager-loaded in a
// single composite read, avoiding per-item round trips.
func (r *pedidoRepo) FindByID(ctx context.Context, id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("Pagos").Preload("Mesa").
		First(&p, id).Error
	return &p, err
}

// List returns pedidos with their owned collections. usuarioID nil = all
// pedidos (admin view); otherwise only the owner's.
func (r *pedidoRepo) List(ctx context.Context, usuarioID *uint, skip, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	q := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Pagos")
	if usuarioID != nil {
		q = q.Where("usuario_id = ?", *usuarioID)
	}
	err := q.Order("id").Offset(skip).Limit(limit).Find(&pedidos).Error
	return pedidos, err
}

// ListByFecha returns all pedidos of one calendar day for reporting.
func (r *pedidoRepo) ListByFecha(ctx context.Context, fecha string) ([]model.Pedido, error) {
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Pagos").Preload("Usuario").Preload("Mesa").
		Where("DATE(fecha_hora) = ?", fecha).
		Order("id").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{"mesa_id": p.MesaID, "estado": p.Estado}).Error
}

func (r *pedidoRepo) CreatePago(ctx context.Context, pago *model.Pago) error {
	return r.db.WithContext(ctx).Create(pago).Error
}
