package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
)

// memStore mimics the conditional-update semantics of the mongo product
// store against in-memory products.
type memStore struct {
	products map[primitive.ObjectID]*domain.Product
	failNext error
}

func (m *memStore) DecrementSizeStock(_ context.Context, id primitive.ObjectID, size string, qty int) (bool, error) {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return false, err
	}
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	e := p.SizeEntry(size)
	if e == nil || e.Stock < qty {
		return false, nil
	}
	e.Stock -= qty
	return true, nil
}

func (m *memStore) IncrementSizeStock(_ context.Context, id primitive.ObjectID, size string, qty int) error {
	p, ok := m.products[id]
	if !ok {
		return nil
	}
	if e := p.SizeEntry(size); e != nil {
		e.Stock += qty
	}
	return nil
}

func newMemStore(products ...*domain.Product) *memStore {
	m := &memStore{products: map[primitive.ObjectID]*domain.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func product(name string, sizes ...domain.SizeStock) *domain.Product {
	return &domain.Product{ID: primitive.NewObjectID(), Name: name, Sizes: sizes}
}

func TestReserveDecrementsStock(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 5})
	store := newMemStore(p)
	adj := NewAdjuster(store, zap.NewNop())

	err := adj.Reserve(context.Background(), []Line{
		{ProductID: p.ID, ProductName: p.Name, Size: "M", Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.SizeEntry("M").Stock)
}

func TestReserveInsufficientStockLeavesStockUnchanged(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 2})
	store := newMemStore(p)
	adj := NewAdjuster(store, zap.NewNop())

	err := adj.Reserve(context.Background(), []Line{
		{ProductID: p.ID, ProductName: p.Name, Size: "M", Quantity: 3},
	})
	require.Error(t, err)
	assert.Equal(t, domain.CodeInsufficientStock, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "T-Shirt")
	assert.Contains(t, err.Error(), "size M")
	assert.Equal(t, 2, p.SizeEntry("M").Stock)
}

func TestReserveMissingSizeFails(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 5})
	store := newMemStore(p)
	adj := NewAdjuster(store, zap.NewNop())

	err := adj.Reserve(context.Background(), []Line{
		{ProductID: p.ID, ProductName: p.Name, Size: "XL", Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, domain.CodeInsufficientStock, domain.CodeOf(err))
	assert.Equal(t, 5, p.SizeEntry("M").Stock)
}

func TestReserveReleasesEarlierLinesOnFailure(t *testing.T) {
	a := product("Jacket", domain.SizeStock{Size: "L", Stock: 4})
	b := product("Skirt", domain.SizeStock{Size: "S", Stock: 1})
	store := newMemStore(a, b)
	adj := NewAdjuster(store, zap.NewNop())

	err := adj.Reserve(context.Background(), []Line{
		{ProductID: a.ID, ProductName: a.Name, Size: "L", Quantity: 2},
		{ProductID: b.ID, ProductName: b.Name, Size: "S", Quantity: 2},
	})
	require.Error(t, err)
	assert.Equal(t, 4, a.SizeEntry("L").Stock, "first line rolled back")
	assert.Equal(t, 1, b.SizeEntry("S").Stock)
}

func TestReserveStoreErrorPropagates(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 5})
	store := newMemStore(p)
	store.failNext = errors.New("connection reset")
	adj := NewAdjuster(store, zap.NewNop())

	err := adj.Reserve(context.Background(), []Line{
		{ProductID: p.ID, ProductName: p.Name, Size: "M", Quantity: 1},
	})
	require.EqualError(t, err, "connection reset")
	assert.Equal(t, 5, p.SizeEntry("M").Stock)
}

func TestReleaseIncrementsStock(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 1})
	store := newMemStore(p)
	adj := NewAdjuster(store, zap.NewNop())

	adj.Release(context.Background(), []Line{
		{ProductID: p.ID, Size: "M", Quantity: 4},
	})
	assert.Equal(t, 5, p.SizeEntry("M").Stock)
}

func TestReleaseMissingSizeIsNoOp(t *testing.T) {
	p := product("T-Shirt", domain.SizeStock{Size: "M", Stock: 1})
	store := newMemStore(p)
	adj := NewAdjuster(store, zap.NewNop())

	adj.Release(context.Background(), []Line{
		{ProductID: p.ID, Size: "XXL", Quantity: 4},
		{ProductID: primitive.NewObjectID(), Size: "M", Quantity: 4},
	})
	assert.Equal(t, 1, p.SizeEntry("M").Stock)
}
