package order

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/services/cart"
)

// CheckoutForm is what the checkout page posts.
type CheckoutForm struct {
	OrderType     string   `form:"orderType"`
	Customer      Customer `form:"customer"`
	Details       Details  `form:"details"`
	PaymentMethod string   `form:"paymentMethod"`
}

func NewFromRequest(r *http.Request) (CheckoutForm, error) {
	err := r.ParseForm()
	if err != nil {
		return CheckoutForm{}, myerrors.NewInvalidInputError(err)
	}
	return NewFromValues(r.Form)
}

func NewFromValues(values url.Values) (CheckoutForm, error) {
	checkout := CheckoutForm{}
	err := formcodec.NewDecoder().Decode(&checkout, values)
	if err != nil {
		return checkout, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return checkout, nil
}

func (f CheckoutForm) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(f)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

func (f CheckoutForm) validate() error {
	orderType := cart.OrderType(f.OrderType)
	if !orderType.IsValid() {
		return myerrors.NewInvalidInputErrorf("unknown order type %q", f.OrderType)
	}

	if strings.TrimSpace(f.Customer.FullName) == "" {
		return myerrors.NewInvalidInputErrorf("customer full name is required")
	}
	if strings.TrimSpace(f.Customer.Email) == "" {
		return myerrors.NewInvalidInputErrorf("customer email is required")
	}
	if strings.TrimSpace(f.Customer.Phone) == "" {
		return myerrors.NewInvalidInputErrorf("customer phone is required")
	}

	switch orderType {
	case cart.OrderTypeDineIn:
		if strings.TrimSpace(f.Details.TableNumber) == "" {
			return myerrors.NewInvalidInputErrorf("table number is required for dine-in orders")
		}
	case cart.OrderTypeDelivery:
		if strings.TrimSpace(f.Details.DeliveryAddress) == "" {
			return myerrors.NewInvalidInputErrorf("delivery address is required for delivery orders")
		}
	}

	if strings.TrimSpace(f.PaymentMethod) == "" {
		return myerrors.NewInvalidInputErrorf("payment method is required")
	}

	return nil
}
