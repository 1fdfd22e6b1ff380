package orders_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional
// ─────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("fallo de almacenamiento simulado")

type memStore struct {
	mu           sync.Mutex
	products     map[string]entity.Product
	orders       map[string]entity.Order
	items        []entity.OrderItem
	archives     []entity.OrderArchive
	archiveItems []entity.OrderItemArchive

	failOrderDelete bool
}

func newMemStore() *memStore {
	return &memStore{products: map[string]entity.Product{}, orders: map[string]entity.Order{}}
}

type snapshot struct {
	orders       map[string]entity.Order
	items        []entity.OrderItem
	archives     []entity.OrderArchive
	archiveItems []entity.OrderItemArchive
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		orders:       make(map[string]entity.Order, len(s.orders)),
		items:        append([]entity.OrderItem(nil), s.items...),
		archives:     append([]entity.OrderArchive(nil), s.archives...),
		archiveItems: append([]entity.OrderItemArchive(nil), s.archiveItems...),
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.orders, s.items, s.archives, s.archiveItems = snap.orders, snap.items, snap.archives, snap.archiveItems
}

func (s *memStore) addProduct(id, price string) {
	s.products[id] = entity.Product{ID: id, SKU: "SKU-" + id, Name: id, Price: decimal.RequireFromString(price)}
}

func (s *memStore) itemsOf(orderID string) []entity.OrderItem {
	var out []entity.OrderItem
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

type memTxRunner struct{ s *memStore }

func (r memTxRunner) RunOrders(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	archiveRepo repository.OrderArchiveRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	if err := fn(memProductRepo{r.s}, memOrderRepo{r.s}, memArchiveRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── Repositorios ─────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
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
	p := r.s.products[id]
	p.Price = price
	r.s.products[id] = p
	return nil
}

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *o
	cp.Items = nil
	r.s.orders[o.ID] = cp
	return nil
}

func (r memOrderRepo) CreateItem(_ context.Context, it *entity.OrderItem) error {
	r.s.items = append(r.s.items, *it)
	return nil
}

func (r memOrderRepo) GetForUpdate(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r memOrderRepo) ListItems(_ context.Context, orderID string) ([]entity.OrderItem, error) {
	return r.s.itemsOf(orderID), nil
}

func (r memOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		cp := o
		cp.Items = r.s.itemsOf(o.ID)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (r memOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	r.s.orders[id] = o
	return nil
}

func (r memOrderRepo) DeleteItems(_ context.Context, orderID string) error {
	kept := r.s.items[:0:0]
	for _, it := range r.s.items {
		if it.OrderID != orderID {
			kept = append(kept, it)
		}
	}
	r.s.items = kept
	return nil
}

func (r memOrderRepo) Delete(_ context.Context, id string) error {
	if r.s.failOrderDelete {
		return errStorage
	}
	delete(r.s.orders, id)
	return nil
}

type memArchiveRepo struct{ s *memStore }

func (r memArchiveRepo) Create(_ context.Context, a *entity.OrderArchive) error {
	cp := *a
	cp.Items = nil
	r.s.archives = append(r.s.archives, cp)
	return nil
}

func (r memArchiveRepo) CreateItem(_ context.Context, it *entity.OrderItemArchive) error {
	r.s.archiveItems = append(r.s.archiveItems, *it)
	return nil
}

func (r memArchiveRepo) withItems(a entity.OrderArchive) *entity.OrderArchive {
	for _, it := range r.s.archiveItems {
		if it.OrderArchiveID == a.ID {
			a.Items = append(a.Items, it)
		}
	}
	return &a
}

func (r memArchiveRepo) GetByID(_ context.Context, id string) (*entity.OrderArchive, error) {
	for _, a := range r.s.archives {
		if a.ID == id {
			return r.withItems(a), nil
		}
	}
	return nil, nil
}

func (r memArchiveRepo) List(_ context.Context) ([]*entity.OrderArchive, error) {
	out := make([]*entity.OrderArchive, 0, len(r.s.archives))
	for i := len(r.s.archives) - 1; i >= 0; i-- {
		out = append(out, r.withItems(r.s.archives[i]))
	}
	return out, nil
}

func (r memArchiveRepo) SumByAction(_ context.Context, action string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range r.s.archives {
		if a.Action == action {
			sum = sum.Add(a.TotalAmount)
		}
	}
	return sum, nil
}

type stubRenderer struct{ got *entity.OrderArchive }

func (s *stubRenderer) Render(a *entity.OrderArchive) ([]byte, error) {
	s.got = a
	return []byte("%PDF-stub"), nil
}
