package cart

import "time"

// OrderType determines which fees apply on top of the subtotal.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

// Pricing policy. All amounts are integer halalas (SAR).
const (
	VATPercent            = 15
	FreeDeliveryThreshold = 10000
	DeliveryFlatFee       = 1500
	DineInServiceCharge   = 500

	MinQuantity  = 1
	MaxQuantity  = 10
	MaxCartItems = 50

	SnapshotTTL = 24 * time.Hour
)

// Tax applies VAT to the subtotal only, never to fees. Rounded half-up.
func Tax(subtotal int) int {
	return (subtotal*VATPercent + 50) / 100
}

// DeliveryFee is zero for non-delivery orders and waived at or above the
// free-delivery threshold.
func DeliveryFee(orderType OrderType, subtotal int) int {
	if orderType != OrderTypeDelivery {
		return 0
	}
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFlatFee
}

func ServiceCharge(orderType OrderType) int {
	if orderType == OrderTypeDineIn {
		return DineInServiceCharge
	}
	return 0
}

func GrandTotal(orderType OrderType, subtotal int) int {
	return subtotal + Tax(subtotal) + DeliveryFee(orderType, subtotal) + ServiceCharge(orderType)
}
