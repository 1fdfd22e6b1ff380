package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional (snapshot + restore)
// ─────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("fallo de almacenamiento simulado")

type memStore struct {
	mu         sync.Mutex
	products   map[string]entity.Product
	warehouses []entity.Warehouse
	items      map[string]entity.InventoryItem
	archive    []entity.InventoryArchive

	failArchiveWrites bool
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]entity.Product{},
		items:    map[string]entity.InventoryItem{},
	}
}

type snapshot struct {
	products   map[string]entity.Product
	warehouses []entity.Warehouse
	items      map[string]entity.InventoryItem
	archive    []entity.InventoryArchive
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		products:   make(map[string]entity.Product, len(s.products)),
		warehouses: append([]entity.Warehouse(nil), s.warehouses...),
		items:      make(map[string]entity.InventoryItem, len(s.items)),
		archive:    append([]entity.InventoryArchive(nil), s.archive...),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.items {
		snap.items[k] = v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.products = snap.products
	s.warehouses = snap.warehouses
	s.items = snap.items
	s.archive = snap.archive
}

func (s *memStore) addWarehouse(name, typ string) *entity.Warehouse {
	w := entity.Warehouse{ID: uuid.New().String(), Name: name, Type: typ, CreatedAt: time.Now()}
	s.warehouses = append(s.warehouses, w)
	return &w
}

func (s *memStore) addProduct(sku string, price string) *entity.Product {
	p := entity.Product{ID: uuid.New().String(), Name: "Producto " + sku, SKU: sku, Price: decimal.RequireFromString(price)}
	s.products[p.ID] = p
	return &p
}

func (s *memStore) addItem(productID, warehouseID string, qty int) *entity.InventoryItem {
	it := entity.InventoryItem{ID: uuid.New().String(), ProductID: productID, WarehouseID: warehouseID, Quantity: qty, MinStock: 2}
	s.items[it.ID] = it
	return &it
}

func (s *memStore) item(id string) (entity.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *memStore) itemFor(productID, warehouseID string) (entity.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID && it.WarehouseID == warehouseID {
			return it, true
		}
	}
	return entity.InventoryItem{}, false
}

func (s *memStore) archiveRows() []entity.InventoryArchive {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.InventoryArchive(nil), s.archive...)
}

// memTxRunner serializa las transacciones y revierte el estado si fn falla.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.InventoryItemRepository,
	archiveRepo repository.InventoryArchiveRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	if err := fn(memProductRepo{r.s}, memWarehouseRepo{r.s}, memItemRepo{r.s}, memArchiveRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── Repositorios (asumen que el llamador tiene el lock) ──────────────────────

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, &p)
	}
	return out, nil
}

func (r memProductRepo) UpdatePrice(_ context.Context, id string, price decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	r.s.products[id] = p
	return nil
}

type memWarehouseRepo struct{ s *memStore }

func (r memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if w.ID == id {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memWarehouseRepo) GetByType(_ context.Context, typ string) (*entity.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if w.Type == typ {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memWarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for i := range r.s.warehouses {
		cp := r.s.warehouses[i]
		out = append(out, &cp)
	}
	return out, nil
}

type memItemRepo struct{ s *memStore }

func (r memItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r memItemRepo) GetOrCreateForUpdate(_ context.Context, productID, warehouseID string, tpl *entity.InventoryItem) (*entity.InventoryItem, error) {
	for _, it := range r.s.items {
		if it.ProductID == productID && it.WarehouseID == warehouseID {
			cp := it
			return &cp, nil
		}
	}
	it := entity.InventoryItem{
		ID:          uuid.New().String(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    0,
		MinStock:    tpl.MinStock,
		Location:    tpl.Location,
		ExpiryDate:  tpl.ExpiryDate,
	}
	r.s.items[it.ID] = it
	return &it, nil
}

func (r memItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	for _, it := range r.s.items {
		if it.ProductID == item.ProductID && it.WarehouseID == item.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r memItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	if item.Quantity < 0 {
		return errors.New("violación de CHECK quantity >= 0")
	}
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r memItemRepo) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

func (r memItemRepo) ListByWarehouseType(_ context.Context, typ string) ([]*entity.InventoryItemView, error) {
	var out []*entity.InventoryItemView
	for _, w := range r.s.warehouses {
		if w.Type != typ {
			continue
		}
		for _, it := range r.s.items {
			if it.WarehouseID != w.ID {
				continue
			}
			p := r.s.products[it.ProductID]
			out = append(out, &entity.InventoryItemView{InventoryItem: it, ProductName: p.Name, SKU: p.SKU, Price: p.Price, WarehouseType: w.Type})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

type memArchiveRepo struct{ s *memStore }

func (r memArchiveRepo) Create(_ context.Context, rec *entity.InventoryArchive) error {
	if r.s.failArchiveWrites {
		return errStorage
	}
	r.s.archive = append(r.s.archive, *rec)
	return nil
}

func (r memArchiveRepo) List(_ context.Context) ([]*entity.InventoryArchive, error) {
	out := make([]*entity.InventoryArchive, 0, len(r.s.archive))
	for i := len(r.s.archive) - 1; i >= 0; i-- {
		cp := r.s.archive[i]
		out = append(out, &cp)
	}
	return out, nil
}
