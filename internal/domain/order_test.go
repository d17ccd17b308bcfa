package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	assert.Equal(t, float64(0), ShippingCost(1000))
	assert.Equal(t, float64(99), ShippingCost(999))
	assert.Equal(t, float64(99), ShippingCost(0))
	assert.Equal(t, float64(0), ShippingCost(999.01))
}

func TestOrderStatusCancellable(t *testing.T) {
	assert.True(t, OrderPending.Cancellable())
	assert.True(t, OrderConfirmed.Cancellable())
	assert.True(t, OrderProcessing.Cancellable())
	assert.False(t, OrderShipped.Cancellable())
	assert.False(t, OrderDelivered.Cancellable())
	assert.False(t, OrderCancelled.Cancellable())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.False(t, OrderShipped.Terminal())
}

func TestSkipsSequence(t *testing.T) {
	assert.False(t, SkipsSequence(OrderPending, OrderConfirmed))
	assert.False(t, SkipsSequence(OrderShipped, OrderDelivered))
	assert.True(t, SkipsSequence(OrderPending, OrderShipped))
	assert.True(t, SkipsSequence(OrderDelivered, OrderPending))
	// cancellation is outside the fulfilment sequence
	assert.False(t, SkipsSequence(OrderProcessing, OrderCancelled))
	assert.False(t, SkipsSequence(OrderPending, OrderPending))
}

func TestSizeEntry(t *testing.T) {
	p := Product{Sizes: []SizeStock{{Size: "M", Stock: 3}, {Size: "L", Stock: 1}}}
	if e := p.SizeEntry("M"); assert.NotNil(t, e) {
		assert.Equal(t, 3, e.Stock)
	}
	assert.Nil(t, p.SizeEntry("m"))
	assert.Nil(t, p.SizeEntry("XL"))
}
