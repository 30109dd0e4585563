package order

import (
	"time"

	"github.com/bellavista/restobackend/services/cart"
)

type Customer struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
}

// Details carries the order-type-specific fields; only the fields relevant
// for the order type are populated.
type Details struct {
	TableNumber     string `json:"tableNumber,omitempty" form:"tableNumber"`
	Guests          int    `json:"guests,omitempty" form:"guests"`
	PickupTime      string `json:"pickupTime,omitempty" form:"pickupTime"`
	DeliveryAddress string `json:"deliveryAddress,omitempty" form:"deliveryAddress"`
	SpecialRequests string `json:"specialRequests,omitempty" form:"specialRequests"`
}

// OrderedItem is the immutable snapshot of one cart line taken at
// submission time.
type OrderedItem struct {
	UID          string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"price"`
	Instructions string `json:"specialInstructions,omitempty"`
}

// Payment is the money block, evaluated against the pricing policy at
// submission time so a late switch of order type still yields correct fees.
// The method is just a tag; no payment I/O happens here.
type Payment struct {
	Subtotal      int    `json:"subtotal"`
	Tax           int    `json:"tax"`
	DeliveryFee   int    `json:"deliveryFee"`
	ServiceCharge int    `json:"serviceCharge"`
	Total         int    `json:"total"`
	Method        string `json:"method"`
}

type Order struct {
	UID              string         `json:"orderId"`
	SessionUID       string         `json:"-"`
	Type             cart.OrderType `json:"orderType"`
	CreatedAt        time.Time      `json:"createdAt"`
	Customer         Customer       `json:"customer"`
	Items            []OrderedItem  `json:"items"`
	Details          Details        `json:"orderDetails"`
	Payment          Payment        `json:"payment"`
	NotificationSent bool           `json:"notificationSent"`
}
