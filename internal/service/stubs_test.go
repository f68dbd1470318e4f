package service

import (
	"context"

	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[uint]*model.Usuario
	nextID uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, skip, limit int) ([]model.Usuario, error) {
	users := make([]model.Usuario, 0, len(r.users))
	for id := uint(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			users = append(users, *u)
		}
	}
	if skip > len(users) {
		skip = len(users)
	}
	users = users[skip:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	nextID    uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.nextID++
	p.ID = r.nextID
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindActivoByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) ListActivos(_ context.Context, skip, limit int) ([]model.Producto, error) {
	productos := make([]model.Producto, 0, len(r.productos))
	for id := uint(1); id <= r.nextID; id++ {
		if p, ok := r.productos[id]; ok && p.Activo {
			productos = append(productos, *p)
		}
	}
	if skip > len(productos) {
		skip = len(productos)
	}
	productos = productos[skip:]
	if limit < len(productos) {
		productos = productos[:limit]
	}
	return productos, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type stubMesaRepo struct {
	mesas  map[uint]*model.Mesa
	nextID uint
}

func newStubMesaRepo() *stubMesaRepo { return &stubMesaRepo{mesas: make(map[uint]*model.Mesa)} }

func (r *stubMesaRepo) Create(_ context.Context, m *model.Mesa) error {
	r.nextID++
	m.ID = r.nextID
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) FindByID(_ context.Context, id uint) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMesaRepo) FindByNumero(_ context.Context, numero int) (*model.Mesa, error) {
	for _, m := range r.mesas {
		if m.NumeroMesa == numero {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMesaRepo) List(_ context.Context) ([]model.Mesa, error) {
	mesas := make([]model.Mesa, 0, len(r.mesas))
	for id := uint(1); id <= r.nextID; id++ {
		if m, ok := r.mesas[id]; ok {
			mesas = append(mesas, *m)
		}
	}
	return mesas, nil
}

func (r *stubMesaRepo) Update(_ context.Context, m *model.Mesa) error {
	if _, ok := r.mesas[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.mesas[m.ID] = m
	return nil
}

var _ repository.MesaRepository = (*stubMesaRepo)(nil)

type stubPedidoRepo struct {
	pedidos map[uint]*model.Pedido
	nextID  uint
	pagoSeq uint
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uint]*model.Pedido)}
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.nextID++
	p.ID = r.nextID
	for i := range p.Detalles {
		p.Detalles[i].ID = uint(i + 1)
		p.Detalles[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uint) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) List(_ context.Context, usuarioID *uint, skip, limit int) ([]model.Pedido, error) {
	pedidos := make([]model.Pedido, 0, len(r.pedidos))
	for id := uint(1); id <= r.nextID; id++ {
		p, ok := r.pedidos[id]
		if !ok {
			continue
		}
		if usuarioID != nil && p.UsuarioID != *usuarioID {
			continue
		}
		pedidos = append(pedidos, *p)
	}
	if skip > len(pedidos) {
		skip = len(pedidos)
	}
	pedidos = pedidos[skip:]
	if limit < len(pedidos) {
		pedidos = pedidos[:limit]
	}
	return pedidos, nil
}

func (r *stubPedidoRepo) ListByFecha(_ context.Context, _ string) ([]model.Pedido, error) {
	pedidos := make([]model.Pedido, 0, len(r.pedidos))
	for id := uint(1); id <= r.nextID; id++ {
		if p, ok := r.pedidos[id]; ok {
			pedidos = append(pedidos, *p)
		}
	}
	return pedidos, nil
}

func (r *stubPedidoRepo) UpdateEstado(_ context.Context, id uint, estado string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estado = estado
	return nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	if _, ok := r.pedidos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) CreatePago(_ context.Context, pago *model.Pago) error {
	p, ok := r.pedidos[pago.PedidoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.pagoSeq++
	pago.ID = r.pagoSeq
	p.Pagos = append(p.Pagos, *pago)
	return nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)
