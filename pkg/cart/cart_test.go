package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchfield-backend/internal/domain"
)

func tempCart(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "cart.json"))
}

func tshirt() Product {
	return Product{ID: "p1", Name: "T-Shirt", Price: 49}
}

func TestAddItemMergesByIdentityKey(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Red"))
	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Red"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemDifferentSizeIsDistinctLine(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Red"))
	require.NoError(t, s.AddItem(tshirt(), 1, "L", "Red"))
	assert.Len(t, s.Items(), 2)

	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Blue"))
	assert.Len(t, s.Items(), 3, "different color is a distinct line too")
}

func TestTotals(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 2, "M", "Red"))
	require.NoError(t, s.AddItem(tshirt(), 3, "M", "Red"))

	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, float64(245), s.TotalAmount())
}

func TestAddItemCapturesPriceAtAddTime(t *testing.T) {
	s := tempCart(t)
	p := tshirt()
	require.NoError(t, s.AddItem(p, 1, "M", "Red"))

	p.Price = 99
	require.NoError(t, s.AddItem(p, 1, "M", "Red"))

	// merged line keeps the original snapshot price
	assert.Equal(t, float64(98), s.TotalAmount())
}

func TestRemoveItem(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Red"))
	require.NoError(t, s.AddItem(tshirt(), 1, "L", "Red"))

	require.NoError(t, s.RemoveItem("p1", "M", "Red"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].Size)
	assert.Equal(t, 1, s.TotalItems())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 2, "M", "Red"))

	require.NoError(t, s.UpdateQuantity("p1", "M", "Red", 7))
	assert.Equal(t, 7, s.TotalItems())

	require.NoError(t, s.UpdateQuantity("p1", "M", "Red", 0))
	assert.Empty(t, s.Items(), "quantity <= 0 removes the line")
	assert.Equal(t, float64(0), s.TotalAmount())
}

func TestUpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 1, "M", "Red"))
	require.NoError(t, s.UpdateQuantity("p1", "XL", "Red", 5))
	assert.Equal(t, 1, s.TotalItems())
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := Open(path)
	require.NoError(t, s.AddItem(tshirt(), 2, "M", "Red"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, float64(0), s.TotalAmount())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "persisted file erased")
}

func TestCartSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := Open(path)
	require.NoError(t, s.AddItem(tshirt(), 2, "M", "Red"))

	reloaded := Open(path)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, reloaded.TotalItems())
	assert.Equal(t, float64(98), reloaded.TotalAmount())
}

func TestOpenCorruptFileYieldsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
}

func TestShippingCostMatchesServer(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(Product{ID: "p2", Name: "Jacket", Price: 999}, 1, "L", "Blue"))
	assert.Equal(t, domain.ShippingCost(s.TotalAmount()), s.ShippingCost())
	assert.Equal(t, float64(99), s.ShippingCost())

	require.NoError(t, s.AddItem(Product{ID: "p3", Name: "Socks", Price: 1}, 1, "", ""))
	assert.Equal(t, domain.ShippingCost(s.TotalAmount()), s.ShippingCost())
	assert.Equal(t, float64(0), s.ShippingCost())
}

func TestCheckoutRequest(t *testing.T) {
	s := tempCart(t)
	require.NoError(t, s.AddItem(tshirt(), 2, "M", "Red"))
	require.NoError(t, s.AddItem(Product{ID: "p2", Name: "Skirt", Price: 799}, 1, "S", ""))

	req := s.CheckoutRequest(ShippingAddress{
		Name: "Asha Rao", Phone: "9876543210", Street: "12 MG Road",
		City: "Bengaluru", State: "Karnataka", ZipCode: "560001",
	}, "upi")

	require.Len(t, req.Items, 2)
	assert.Equal(t, "p1", req.Items[0].Product)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, "M", req.Items[0].Size)
	assert.Equal(t, "Red", req.Items[0].Color)
	assert.Equal(t, "upi", req.PaymentMethod)
	assert.Equal(t, "Bengaluru", req.ShippingAddress.City)
}
