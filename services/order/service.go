package order

import (
	"context"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mypublisher"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
	"github.com/bellavista/restobackend/lib/myuuid"
	"github.com/bellavista/restobackend/services/cart"
)

// CartAccess is the slice of the cart service that order submission needs.
//
//go:generate mockgen -source=service.go -package order -destination cart_access_mock.go CartAccess
type CartAccess interface {
	Get(c context.Context, sessionUID string) (cart.Cart, error)
	Clear(c context.Context, sessionUID string) error
}

type service struct {
	orderStore mystore.Store[Order]
	carts      CartAccess
	intake     Intake
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Order], carts CartAccess, intake Intake, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		orderStore: store,
		carts:      carts,
		intake:     intake,
		publisher:  pub,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
	}
}
