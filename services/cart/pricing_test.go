package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTax(t *testing.T) {
	testCases := []struct {
		name     string
		subtotal int
		expected int
	}{
		{name: "zero subtotal", subtotal: 0, expected: 0},
		{name: "exact", subtotal: 9000, expected: 1350},
		{name: "rounds up", subtotal: 10, expected: 2},
		{name: "rounds down", subtotal: 9, expected: 1},
		{name: "single halala", subtotal: 1, expected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tax(tc.subtotal))
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	t.Run("Just below free-delivery threshold", func(t *testing.T) {
		assert.Equal(t, DeliveryFlatFee, DeliveryFee(OrderTypeDelivery, FreeDeliveryThreshold-1))
	})

	t.Run("Exactly at free-delivery threshold", func(t *testing.T) {
		assert.Equal(t, 0, DeliveryFee(OrderTypeDelivery, FreeDeliveryThreshold))
	})

	t.Run("Above free-delivery threshold", func(t *testing.T) {
		assert.Equal(t, 0, DeliveryFee(OrderTypeDelivery, FreeDeliveryThreshold+5000))
	})

	t.Run("Never charged for non-delivery order types", func(t *testing.T) {
		assert.Equal(t, 0, DeliveryFee(OrderTypeDineIn, 100))
		assert.Equal(t, 0, DeliveryFee(OrderTypeTakeaway, 100))
	})
}

func TestServiceCharge(t *testing.T) {
	assert.Equal(t, DineInServiceCharge, ServiceCharge(OrderTypeDineIn))
	assert.Equal(t, 0, ServiceCharge(OrderTypeTakeaway))
	assert.Equal(t, 0, ServiceCharge(OrderTypeDelivery))
}

func TestGrandTotal(t *testing.T) {
	t.Run("Delivery below threshold", func(t *testing.T) {
		assert.Equal(t, 9000+1350+1500, GrandTotal(OrderTypeDelivery, 9000))
	})

	t.Run("Dine-in", func(t *testing.T) {
		assert.Equal(t, 9000+1350+500, GrandTotal(OrderTypeDineIn, 9000))
	})

	t.Run("Takeaway", func(t *testing.T) {
		assert.Equal(t, 9000+1350, GrandTotal(OrderTypeTakeaway, 9000))
	})
}

func TestOrderTypeIsValid(t *testing.T) {
	assert.True(t, OrderTypeDineIn.IsValid())
	assert.True(t, OrderTypeTakeaway.IsValid())
	assert.True(t, OrderTypeDelivery.IsValid())
	assert.False(t, OrderType("drive-through").IsValid())
	assert.False(t, OrderType("").IsValid())
}
