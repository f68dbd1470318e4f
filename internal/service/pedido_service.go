package service

import (
	"context"
	"fmt"

	"github.com/larrykatula12/restaurante/internal/apierror"
	"github.com/larrykatula12/restaurante/internal/dto"
	"github.com/larrykatula12/restaurante/internal/model"
	"github.com/larrykatula12/restaurante/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Crear(ctx context.Context, actor *model.Usuario, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, actor *model.Usuario, skip, limit int) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, actor *model.Usuario, id uint) (*dto.PedidoResponse, error)
	Actualizar(ctx context.Context, actor *model.Usuario, id uint, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
	Cerrar(ctx context.Context, actor *model.Usuario, id uint) (*dto.PedidoResponse, error)
	AgregarPago(ctx context.Context, actor *model.Usuario, id uint, req dto.CrearPagoRequest) (*dto.PagoResponse, error)
	// ObtenerModelo returns the loaded pedido for non-JSON renderings (PDF
	// receipt), applying the same visibility rules as ObtenerPorID.
	ObtenerModelo(ctx context.Context, actor *model.Usuario, id uint) (*model.Pedido, error)
}

type pedidoService struct {
	repo         repository.PedidoRepository
	productoRepo repository.ProductoRepository
}

func NewPedidoService(repo repository.PedidoRepository, productoRepo repository.ProductoRepository) PedidoService {
	return &pedidoService{repo: repo, productoRepo: productoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// The whole pedido is persisted atomically: every requested product must
// exist and be active or nothing is written. Unit prices are copied from the
// product's current price at this instant; the total is the sum of subtotals
// and is never recomputed afterwards.

func (s *pedidoService) Crear(ctx context.Context, actor *model.Usuario, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	pedido := model.Pedido{
		UsuarioID: actor.ID,
		MesaID:    req.IDMesa,
		Estado:    model.PedidoAbierto,
	}

	total := decimal.Zero
	for _, det := range req.Detalles {
		producto, err := s.productoRepo.FindActivoByID(ctx, det.IDProducto)
		if err != nil {
			return nil, apierror.New(fmt.Sprintf("Producto ID %d no disponible", det.IDProducto))
		}
		subtotal := producto.Precio.Mul(decimal.NewFromInt(int64(det.Cantidad)))
		total = total.Add(subtotal)
		pedido.Detalles = append(pedido.Detalles, model.DetallePedido{
			ProductoID:     det.IDProducto,
			Cantidad:       det.Cantidad,
			PrecioUnitario: producto.Precio,
			Subtotal:       subtotal,
		})
	}
	pedido.Total = total

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &pedido)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := mapPedido(&pedido)
	return &resp, nil
}

// ── Lectura ───────────────────────────────────────────────────────────────────

func (s *pedidoService) Listar(ctx context.Context, actor *model.Usuario, skip, limit int) ([]dto.PedidoResponse, error) {
	var owner *uint
	if !actor.EsAdmin() {
		owner = &actor.ID
	}
	pedidos, err := s.repo.List(ctx, owner, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = mapPedido(&pedidos[i])
	}
	return resp, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, actor *model.Usuario, id uint) (*dto.PedidoResponse, error) {
	pedido, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := mapPedido(pedido)
	return &resp, nil
}

func (s *pedidoService) ObtenerModelo(ctx context.Context, actor *model.Usuario, id uint) (*model.Pedido, error) {
	return s.findVisible(ctx, actor, id)
}

// findVisible loads the pedido and enforces the ownership rule: 404 when the
// id does not exist, 403 when it exists but is not visible to the caller.
func (s *pedidoService) findVisible(ctx context.Context, actor *model.Usuario, id uint) (*model.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Pedido no encontrado")
	}
	if !actor.EsAdmin() && pedido.UsuarioID != actor.ID {
		return nil, apierror.NewForbidden("No tienes permiso para ver este pedido")
	}
	return pedido, nil
}

// ── Mutaciones de estado ──────────────────────────────────────────────────────

func (s *pedidoService) Actualizar(ctx context.Context, actor *model.Usuario, id uint, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if pedido.Estado != model.PedidoAbierto {
		return nil, apierror.New("El pedido no está abierto")
	}

	if req.IDMesa != nil {
		pedido.MesaID = req.IDMesa
	}
	if req.Estado != nil {
		pedido.Estado = *req.Estado
	}
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	resp := mapPedido(pedido)
	return &resp, nil
}

func (s *pedidoService) Cerrar(ctx context.Context, actor *model.Usuario, id uint) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Pedido no encontrado")
	}
	if !actor.EsAdmin() && pedido.UsuarioID != actor.ID {
		return nil, apierror.NewForbidden("No puedes cerrar un pedido que no te pertenece")
	}
	if pedido.Estado != model.PedidoAbierto {
		return nil, apierror.New("El pedido no está abierto")
	}

	if err := s.repo.UpdateEstado(ctx, id, model.PedidoCerrado); err != nil {
		return nil, err
	}
	pedido.Estado = model.PedidoCerrado
	resp := mapPedido(pedido)
	return &resp, nil
}

// AgregarPago appends a payment to an open pedido. The amount is not checked
// against the order total; over- and under-payment both go through.
func (s *pedidoService) AgregarPago(ctx context.Context, actor *model.Usuario, id uint, req dto.CrearPagoRequest) (*dto.PagoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("Pedido no encontrado")
	}
	if !actor.EsAdmin() && pedido.UsuarioID != actor.ID {
		return nil, apierror.NewForbidden("No puedes agregar pago a este pedido")
	}
	if pedido.Estado != model.PedidoAbierto {
		return nil, apierror.New("No se pueden agregar pagos a un pedido cerrado o cancelado")
	}

	pago := &model.Pago{
		PedidoID:   id,
		MetodoPago: req.MetodoPago,
		Monto:      req.Monto,
	}
	if err := s.repo.CreatePago(ctx, pago); err != nil {
		return nil, err
	}
	resp := mapPago(pago)
	return &resp, nil
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func mapPago(p *model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		IDPago:     p.ID,
		IDPedido:   p.PedidoID,
		MetodoPago: p.MetodoPago,
		Monto:      p.Monto,
		FechaHora:  p.FechaHora.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapPedido(p *model.Pedido) dto.PedidoResponse {
	detalles := make([]dto.DetallePedidoResponse, 0, len(p.Detalles))
	for _, det := range p.Detalles {
		detalles = append(detalles, dto.DetallePedidoResponse{
			IDDetalle:      det.ID,
			IDProducto:     det.ProductoID,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
			Subtotal:       det.Subtotal,
		})
	}
	pagos := make([]dto.PagoResponse, 0, len(p.Pagos))
	for i := range p.Pagos {
		pagos = append(pagos, mapPago(&p.Pagos[i]))
	}
	return dto.PedidoResponse{
		IDPedido:  p.ID,
		IDUsuario: p.UsuarioID,
		IDMesa:    p.MesaID,
		FechaHora: p.FechaHora.Format("2006-01-02T15:04:05Z07:00"),
		Total:     p.Total,
		Estado:    p.Estado,
		Detalles:  detalles,
		Pagos:     pagos,
	}
}
