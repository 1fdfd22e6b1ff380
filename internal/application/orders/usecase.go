package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/order"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/logger"
	"github.com/jhoicas/Planta-api/pkg/phone"
)

// ItemInput línea solicitada.
type ItemInput struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderInput datos de un pedido nuevo. TotalAmount nil se calcula desde las líneas.
type CreateOrderInput struct {
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TotalAmount   *decimal.Decimal
	DeliveryDate  *time.Time
	Items         []ItemInput
}

// StatusResult efecto de una transición de estado.
type StatusResult struct {
	Status    string
	Archived  bool
	ArchiveID string
}

// Config parámetros del caso de uso.
type Config struct {
	PhoneRegion string
}

// OrderUseCase ciclo de vida de pedidos: alta, transición de estado, archivo e ingresos.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	archiveRepo repository.OrderArchiveRepository
	receipts    ReceiptRenderer
	cfg         Config
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso. Los repos sueltos se usan para lecturas fuera de tx.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	archiveRepo repository.OrderArchiveRepository,
	receipts ReceiptRenderer,
	cfg Config,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		archiveRepo: archiveRepo,
		receipts:    receipts,
		cfg:         cfg,
		log:         log.Component("orders"),
	}
}

// Create persiste el pedido en pending/unpaid con sus líneas; TotalPrice de cada línea queda congelado.
func (uc *OrderUseCase) Create(ctx context.Context, createdBy string, in CreateOrderInput) (*entity.Order, error) {
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.OrderNumber == "" || in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || !domain.ValidAmount(it.Price) {
			return nil, domain.ErrInvalidInput
		}
		if !domain.ValidAmount(order.LineTotal(it.Quantity, it.Price)) {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.TotalAmount != nil && !domain.ValidAmount(*in.TotalAmount) {
		return nil, domain.ErrInvalidInput
	}
	customerPhone, err := phone.Normalize(in.CustomerPhone, uc.cfg.PhoneRegion)
	if err != nil {
		if errors.Is(err, phone.ErrInvalid) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}

	now := time.Now()
	o := &entity.Order{
		ID:            uuid.New().String(),
		OrderNumber:   in.OrderNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: customerPhone,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		CreatedBy:     createdBy,
		OrderDate:     now,
		DeliveryDate:  in.DeliveryDate,
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    o.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.Price,
			TotalPrice: order.LineTotal(it.Quantity, it.Price),
		})
	}
	if in.TotalAmount != nil {
		o.TotalAmount = *in.TotalAmount
	} else {
		o.TotalAmount = order.Total(o.Items)
	}
	if !domain.ValidAmount(o.TotalAmount) {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.RunOrders(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		_ repository.OrderArchiveRepository,
	) error {
		for _, it := range o.Items {
			p, err := productRepo.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrInvalidInput
			}
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}
		for i := range o.Items {
			if err := orderRepo.CreateItem(ctx, &o.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", o.ID).Str("order_number", o.OrderNumber).Str("total", o.TotalAmount.String()).Msg("pedido creado")
	return o, nil
}

// UpdateStatus bloquea el pedido y aplica la transición: pending/processing en sitio,
// completed/cancelled archiva y elimina las filas vivas.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor, orderID, status string) (*StatusResult, error) {
	status = strings.TrimSpace(status)
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}

	var res StatusResult
	err := uc.txRunner.RunOrders(ctx, func(
		_ repository.ProductRepository,
		orderRepo repository.OrderRepository,
		archiveRepo repository.OrderArchiveRepository,
	) error {
		o, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		action, err := order.Transition(o.Status, status)
		if err != nil {
			return err
		}
		switch action {
		case order.ActionUpdate:
			if err := orderRepo.UpdateStatus(ctx, o.ID, status); err != nil {
				return err
			}
			res = StatusResult{Status: status}
		case order.ActionArchive:
			archiveID, err := archiveOrder(ctx, orderRepo, archiveRepo, o, status, actor, time.Now())
			if err != nil {
				return err
			}
			res = StatusResult{Status: status, Archived: true, ArchiveID: archiveID}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info().Str("order_id", orderID).Str("status", status).Str("by", actor)
	if res.Archived {
		ev.Str("archive_id", res.ArchiveID).Msg("pedido archivado")
	} else {
		ev.Msg("estado de pedido actualizado")
	}
	return &res, nil
}

// archiveOrder mueve el pedido y sus líneas a las tablas de archivo dentro de la tx del llamador.
// Las líneas archivadas se crean 1:1 y en el mismo orden que las vivas.
func archiveOrder(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	archiveRepo repository.OrderArchiveRepository,
	o *entity.Order,
	action, actor string,
	now time.Time,
) (string, error) {
	items, err := orderRepo.ListItems(ctx, o.ID)
	if err != nil {
		return "", err
	}
	archive := &entity.OrderArchive{
		ID:            uuid.New().String(),
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Action:        action,
		PerformedBy:   actor,
		TotalAmount:   o.TotalAmount,
		Timestamp:     now,
	}
	if err := archiveRepo.Create(ctx, archive); err != nil {
		return "", err
	}
	for _, it := range items {
		if err := archiveRepo.CreateItem(ctx, &entity.OrderItemArchive{
			ID:             uuid.New().String(),
			OrderArchiveID: archive.ID,
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
		}); err != nil {
			return "", err
		}
	}
	if err := orderRepo.DeleteItems(ctx, o.ID); err != nil {
		return "", err
	}
	if err := orderRepo.Delete(ctx, o.ID); err != nil {
		return "", err
	}
	return archive.ID, nil
}

// Revenue suma total_amount de los pedidos archivados como completed, redondeado a 2 decimales.
func (uc *OrderUseCase) Revenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := uc.archiveRepo.SumByAction(ctx, entity.OrderStatusCompleted)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

// List devuelve los pedidos vivos con sus líneas, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}

// ListArchive devuelve los pedidos archivados con sus líneas anidadas.
func (uc *OrderUseCase) ListArchive(ctx context.Context) ([]*entity.OrderArchive, error) {
	return uc.archiveRepo.List(ctx)
}

// Receipt genera el comprobante PDF de un pedido archivado.
func (uc *OrderUseCase) Receipt(ctx context.Context, archiveID string) ([]byte, error) {
	archive, err := uc.archiveRepo.GetByID(ctx, archiveID)
	if err != nil {
		return nil, err
	}
	if archive == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.Render(archive)
}
