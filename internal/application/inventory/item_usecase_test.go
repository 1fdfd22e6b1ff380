package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

func newItemFixture() (*memStore, *inventory.ItemUseCase, *entity.Product, *entity.InventoryItem) {
	s := newMemStore()
	raw := s.addWarehouse("Materia prima", entity.WarehouseTypeRawMaterials)
	s.addWarehouse("Mayoreo", entity.WarehouseTypeWholesale)
	p := s.addProduct("AZU-010", "10.00")
	it := s.addItem(p.ID, raw.ID, 10)
	uc := inventory.NewItemUseCase(memTxRunner{s}, memItemRepo{s}, inventory.NewAuditRecorder(nil), logger.Nop())
	return s, uc, p, it
}

func intp(v int) *int { return &v }

// ─────────────────────────────────────────────────────────────────────────────
// UpdateItem
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_CantidadGeneraUnRegistro(t *testing.T) {
	s, uc, _, it := newItemFixture()

	changes, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Quantity: intp(15)})
	require.NoError(t, err)
	require.Len(t, changes, 1)

	rows := s.archiveRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "quantity", rows[0].Field)
	assert.Equal(t, "10", rows[0].OldValue)
	assert.Equal(t, "15", rows[0].NewValue)
	assert.Equal(t, "AZU-010", rows[0].SKU)

	got, _ := s.item(it.ID)
	assert.Equal(t, 15, got.Quantity)
}

func TestUpdateItem_SinCambioNoAudita(t *testing.T) {
	s, uc, _, it := newItemFixture()

	changes, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Quantity: intp(10)})
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Empty(t, s.archiveRows())
}

func TestUpdateItem_VariosCamposYPrecio(t *testing.T) {
	s, uc, p, it := newItemFixture()
	loc := "Pasillo 3"
	price := decimal.RequireFromString("11.25")

	changes, err := uc.UpdateItem(context.Background(), "root", it.ID, inventory.UpdateItemInput{
		Quantity: intp(10), // sin cambio
		MinStock: intp(5),
		Location: &loc,
		Price:    &price,
	})
	require.NoError(t, err)

	fields := make([]string, 0, len(changes))
	for _, ch := range changes {
		fields = append(fields, ch.Field)
	}
	assert.Equal(t, []string{"min_stock", "location", "price"}, fields)
	assert.Len(t, s.archiveRows(), 3)

	got, _ := s.item(it.ID)
	assert.Equal(t, 5, got.MinStock)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Pasillo 3", *got.Location)
	assert.True(t, s.products[p.ID].Price.Equal(price))
}

func TestUpdateItem_PrecioEquivalenteNoAudita(t *testing.T) {
	s, uc, _, it := newItemFixture()
	same := decimal.RequireFromString("10.0")

	changes, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Price: &same})
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Empty(t, s.archiveRows())
}

func TestUpdateItem_PrecioConMasDeDosDecimalesRechazado(t *testing.T) {
	s, uc, p, it := newItemFixture()
	price := decimal.RequireFromString("10.005")

	_, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Price: &price})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.archiveRows())
	assert.True(t, s.products[p.ID].Price.Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateItem_NoEncontrado(t *testing.T) {
	_, uc, _, _ := newItemFixture()
	_, err := uc.UpdateItem(context.Background(), "ana", "nada", inventory.UpdateItemInput{Quantity: intp(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_NegativoRechazado(t *testing.T) {
	s, uc, _, it := newItemFixture()
	_, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Quantity: intp(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.archiveRows())
}

func TestUpdateItem_FalloDeAuditoriaNoAplicaCambio(t *testing.T) {
	s, uc, _, it := newItemFixture()
	s.failArchiveWrites = true

	_, err := uc.UpdateItem(context.Background(), "ana", it.ID, inventory.UpdateItemInput{Quantity: intp(99)})
	assert.Error(t, err)

	got, _ := s.item(it.ID)
	assert.Equal(t, 10, got.Quantity)
}

// ─────────────────────────────────────────────────────────────────────────────
// AddItem / DeleteItem / List
// ─────────────────────────────────────────────────────────────────────────────

func TestAddItem_CreaProductoEItem(t *testing.T) {
	s, uc, _, _ := newItemFixture()
	price := decimal.RequireFromString("3.40")

	item, err := uc.AddItem(context.Background(), "ana", entity.WarehouseTypeWholesale, inventory.AddItemInput{
		SKU: "SAL-500", ProductName: "Sal 500g", Quantity: 40, MinStock: 10, Price: &price,
	})
	require.NoError(t, err)

	got, ok := s.item(item.ID)
	require.True(t, ok)
	assert.Equal(t, 40, got.Quantity)

	rows := s.archiveRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "created", rows[0].Field)
	assert.Equal(t, "40", rows[0].NewValue)
	assert.Equal(t, "SAL-500", rows[0].SKU)
}

func TestAddItem_ParDuplicado(t *testing.T) {
	_, uc, p, _ := newItemFixture()
	_, err := uc.AddItem(context.Background(), "ana", entity.WarehouseTypeRawMaterials, inventory.AddItemInput{
		SKU: p.SKU, ProductName: p.Name, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddItem_BodegaInvalida(t *testing.T) {
	_, uc, _, _ := newItemFixture()
	_, err := uc.AddItem(context.Background(), "ana", "otra", inventory.AddItemInput{SKU: "X-1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidWarehouse)
}

func TestDeleteItem_AuditaYElimina(t *testing.T) {
	s, uc, _, it := newItemFixture()

	require.NoError(t, uc.DeleteItem(context.Background(), "root", it.ID))

	_, ok := s.item(it.ID)
	assert.False(t, ok)
	rows := s.archiveRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "deleted", rows[0].Field)
	assert.Equal(t, "10", rows[0].OldValue)

	assert.ErrorIs(t, uc.DeleteItem(context.Background(), "root", it.ID), domain.ErrNotFound)
}

func TestListByWarehouseType(t *testing.T) {
	_, uc, _, it := newItemFixture()

	list, err := uc.ListByWarehouseType(context.Background(), entity.WarehouseTypeRawMaterials)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, it.ID, list[0].ID)
	assert.Equal(t, "AZU-010", list[0].SKU)

	list, err = uc.ListByWarehouseType(context.Background(), "desconocido")
	require.NoError(t, err)
	assert.Empty(t, list)
}
