package cart

import (
	"sync"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
)

// Service owns the cart state of all active sessions. The in-memory cart is
// authoritative; the snapshot store mirrors every successful mutation so a
// session survives a restart within the snapshot TTL.
type Service struct {
	mutex     sync.Mutex
	carts     map[string]*Cart
	snapshots snapshotStore
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Snapshot], nower mytime.Nower, logger mylog.Logger) *Service {
	return &Service{
		carts:     map[string]*Cart{},
		snapshots: newSnapshotStore(store, nower, logger),
		logger:    logger,
	}
}
