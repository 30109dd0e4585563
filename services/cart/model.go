package cart

import (
	"strings"

	"github.com/bellavista/restobackend/services/menu"
)

// Customizations are the user-selected modifiers of a line item.
type Customizations struct {
	Size         string   `json:"size,omitempty"`
	Extras       []string `json:"extras,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

func (cu Customizations) IsZero() bool {
	return strings.TrimSpace(cu.Size) == "" &&
		len(cu.Extras) == 0 &&
		strings.TrimSpace(cu.Instructions) == ""
}

// LineItem is one entry in the cart: a snapshot of a menu item plus a
// specific customization choice and quantity. The price is captured at the
// time of adding and never re-fetched.
type LineItem struct {
	UID            string         `json:"id"`
	MenuItemUID    string         `json:"menuItemUid"`
	Name           string         `json:"name"`
	UnitPrice      int            `json:"price"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations,omitzero"`
	Subtotal       int            `json:"subtotal"`
}

// Cart is the ordered collection of line items for one browser session.
// Insertion order is preserved for display purposes only.
type Cart struct {
	SessionUID string     `json:"sessionUid"`
	Items      []LineItem `json:"items"`
}

func (crt Cart) IsEmpty() bool {
	return len(crt.Items) == 0
}

// ItemCount is the sum of quantities across all line items.
func (crt Cart) ItemCount() int {
	count := 0
	for _, item := range crt.Items {
		count += item.Quantity
	}
	return count
}

func (crt Cart) Subtotal() int {
	subtotal := 0
	for _, item := range crt.Items {
		subtotal += item.Subtotal
	}
	return subtotal
}

func (crt Cart) Contains(menuItemUID string) bool {
	for _, item := range crt.Items {
		if item.MenuItemUID == menuItemUID {
			return true
		}
	}
	return false
}

func (crt Cart) Tax() int {
	return Tax(crt.Subtotal())
}

func (crt Cart) DeliveryFee(orderType OrderType) int {
	return DeliveryFee(orderType, crt.Subtotal())
}

func (crt Cart) ServiceCharge(orderType OrderType) int {
	return ServiceCharge(orderType)
}

func (crt Cart) GrandTotal(orderType OrderType) int {
	return GrandTotal(orderType, crt.Subtotal())
}

// addItem validates first and only then mutates: a rejected add leaves the
// cart exactly as it was. A line item with the same derived identity merges;
// a merge that would push the line past MaxQuantity is rejected, same as
// updateQuantity, so no requested quantity is ever silently dropped.
func (crt *Cart) addItem(item menu.Item, quantity int, customizations Customizations) error {
	if !item.Available {
		return ItemUnavailableError{MenuItemUID: item.UID}
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return InvalidQuantityError{Quantity: quantity}
	}
	if crt.ItemCount()+quantity > MaxCartItems {
		return CartLimitExceededError{
			Current:   crt.ItemCount(),
			Attempted: crt.ItemCount() + quantity,
		}
	}

	uid := lineItemID(item.UID, customizations)

	for i, existing := range crt.Items {
		if existing.UID != uid {
			continue
		}

		merged := existing.Quantity + quantity
		if merged > MaxQuantity {
			return InvalidQuantityError{Quantity: merged}
		}

		crt.Items[i].Quantity = merged
		crt.Items[i].Subtotal = crt.Items[i].UnitPrice * merged

		return nil
	}

	crt.Items = append(crt.Items, LineItem{
		UID:            uid,
		MenuItemUID:    item.UID,
		Name:           item.Name,
		UnitPrice:      item.Price,
		Quantity:       quantity,
		Customizations: customizations,
		Subtotal:       item.Price * quantity,
	})

	return nil
}

// updateQuantity drops the line item when the quantity falls below
// MinQuantity. Updating an absent line item is a no-op.
func (crt *Cart) updateQuantity(lineItemUID string, quantity int) error {
	if quantity > MaxQuantity {
		return InvalidQuantityError{Quantity: quantity}
	}
	if quantity < MinQuantity {
		crt.removeItem(lineItemUID)
		return nil
	}

	for i, existing := range crt.Items {
		if existing.UID != lineItemUID {
			continue
		}

		crt.Items[i].Quantity = quantity
		crt.Items[i].Subtotal = crt.Items[i].UnitPrice * quantity

		return nil
	}

	return nil
}

// removeItem is idempotent: removing an absent line item is not an error.
func (crt *Cart) removeItem(lineItemUID string) {
	for i, existing := range crt.Items {
		if existing.UID == lineItemUID {
			crt.Items = append(crt.Items[:i], crt.Items[i+1:]...)
			return
		}
	}
}

func (crt *Cart) clear() {
	crt.Items = nil
}
