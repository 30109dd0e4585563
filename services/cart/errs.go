package cart

import "fmt"

// The four user-correctable cart errors. The web layer wraps them in
// myerrors to pick the http status; callers use errors.As to distinguish
// "fix your cart" conditions from infrastructure failures.

type ItemUnavailableError struct {
	MenuItemUID string
}

func (e ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %s is currently unavailable", e.MenuItemUID)
}

type InvalidQuantityError struct {
	Quantity int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity %d is outside the allowed range [%d..%d]", e.Quantity, MinQuantity, MaxQuantity)
}

type CartLimitExceededError struct {
	Current   int
	Attempted int
}

func (e CartLimitExceededError) Error() string {
	return fmt.Sprintf("cart limit of %d items exceeded: %d in cart, %d attempted", MaxCartItems, e.Current, e.Attempted)
}

type EmptyCartError struct{}

func (e EmptyCartError) Error() string {
	return "cart is empty"
}
