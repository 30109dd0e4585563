package order

import (
	"context"
	"fmt"
	"sort"

	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/services/cart"
	"github.com/bellavista/restobackend/services/cart/cartevents"
	"github.com/bellavista/restobackend/services/order/orderevents"
)

// submitOrder snapshots the session's cart into an immutable order, stores
// it and hands it to the intake boundary. The money block is computed here,
// at submission time, so switching order type after adding items yields the
// correct fees. The cart is cleared only after the intake acknowledged the
// order.
func (s *service) submitOrder(c context.Context, sessionUID string, form CheckoutForm) (Order, error) {
	err := form.validate()
	if err != nil {
		return Order{}, err
	}

	crt, err := s.carts.Get(c, sessionUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if crt.IsEmpty() {
		return Order{}, myerrors.NewInvalidInputError(cart.EmptyCartError{})
	}

	orderType := cart.OrderType(form.OrderType)
	subtotal := crt.Subtotal()

	submitted := Order{
		UID:        s.uuider.Create(),
		SessionUID: sessionUID,
		Type:       orderType,
		CreatedAt:  s.nower.Now(),
		Customer:   form.Customer,
		Items:      snapshotItems(crt),
		Details:    form.Details,
		Payment: Payment{
			Subtotal:      subtotal,
			Tax:           cart.Tax(subtotal),
			DeliveryFee:   cart.DeliveryFee(orderType, subtotal),
			ServiceCharge: cart.ServiceCharge(orderType),
			Total:         cart.GrandTotal(orderType, subtotal),
			Method:        form.PaymentMethod,
		},
	}

	s.logger.Log(c, submitted.UID, mylog.SeverityInfo, "Submitting %s order %s for session %s", submitted.Type, submitted.UID, sessionUID)

	err = s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, submitted.UID, submitted)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderSubmitted{
			OrderUID:   submitted.UID,
			SessionUID: sessionUID,
			Total:      submitted.Payment.Total,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	// Intake failures are distinct from the cart-validation errors: the
	// cart is kept so the user can just try submitting again.
	ack, err := s.intake.Submit(c, submitted)
	if err != nil {
		return Order{}, myerrors.NewUnavailableError(fmt.Errorf("order intake rejected order %s: %s", submitted.UID, err))
	}
	submitted.NotificationSent = ack.NotificationSent

	err = s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, submitted.UID, submitted)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartCheckedOut{
			SessionUID: sessionUID,
			OrderUID:   submitted.UID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	err = s.carts.Clear(c, sessionUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}

	return submitted, nil
}

func (s *service) getOrder(c context.Context, orderUID string) (Order, error) {
	submitted, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return submitted, nil
}

func (s *service) listOrders(c context.Context) ([]Order, error) {
	orders, err := s.orderStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func snapshotItems(crt cart.Cart) []OrderedItem {
	items := make([]OrderedItem, 0, len(crt.Items))
	for _, line := range crt.Items {
		items = append(items, OrderedItem{
			UID:          line.UID,
			Name:         line.Name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Instructions: line.Customizations.Instructions,
		})
	}

	return items
}
