package cart

import (
	"context"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/services/menu"
)

// hydrate returns the session's cart, loading it from the snapshot store the
// first time a session shows up. Caller must hold the mutex.
func (s *Service) hydrate(c context.Context, sessionUID string) *Cart {
	crt, present := s.carts[sessionUID]
	if present {
		return crt
	}

	crt = &Cart{SessionUID: sessionUID}
	if items, ok := s.snapshots.load(c, sessionUID); ok {
		crt.Items = items
	}
	s.carts[sessionUID] = crt

	return crt
}

// Get returns a copy of the session's cart; mutating the copy does not
// affect the owned state.
func (s *Service) Get(c context.Context, sessionUID string) (Cart, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.hydrate(c, sessionUID).copy(), nil
}

func (s *Service) AddItem(c context.Context, sessionUID string, item menu.Item, quantity int, customizations Customizations) (Cart, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	crt := s.hydrate(c, sessionUID)

	err := crt.addItem(item, quantity, customizations)
	if err != nil {
		return Cart{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Added %d x %s to cart", quantity, item.UID)
	s.snapshots.save(c, sessionUID, crt.Items)

	return crt.copy(), nil
}

func (s *Service) UpdateQuantity(c context.Context, sessionUID string, lineItemUID string, quantity int) (Cart, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	crt := s.hydrate(c, sessionUID)

	err := crt.updateQuantity(lineItemUID, quantity)
	if err != nil {
		return Cart{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Updated line item %s to quantity %d", lineItemUID, quantity)
	s.snapshots.save(c, sessionUID, crt.Items)

	return crt.copy(), nil
}

func (s *Service) RemoveItem(c context.Context, sessionUID string, lineItemUID string) (Cart, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	crt := s.hydrate(c, sessionUID)
	crt.removeItem(lineItemUID)

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Removed line item %s from cart", lineItemUID)
	s.snapshots.save(c, sessionUID, crt.Items)

	return crt.copy(), nil
}

// Clear empties the cart and immediately invalidates the persisted snapshot.
func (s *Service) Clear(c context.Context, sessionUID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	crt := s.hydrate(c, sessionUID)
	crt.clear()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Cleared cart")
	s.snapshots.discard(c, sessionUID)

	return nil
}

func (crt *Cart) copy() Cart {
	duplicate := Cart{
		SessionUID: crt.SessionUID,
		Items:      make([]LineItem, len(crt.Items)),
	}
	copy(duplicate.Items, crt.Items)

	return duplicate
}
