package cart

import (
	"context"
	"time"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
)

// snapshotVersion guards the persisted layout: a snapshot written by an
// incompatible older deployment is discarded instead of half-decoded.
const snapshotVersion = 1

// Snapshot is the durable envelope for a session's cart. It is the only
// persisted state layout owned by this package.
type Snapshot struct {
	SessionUID string
	Version    int
	Items      []LineItem `datastore:",noindex"`
	UpdatedAt  time.Time
}

// snapshotStore mirrors the in-memory carts to a durable slot per session.
// Cart data is a convenience cache, not a system of record: every storage
// failure here is logged and absorbed, so a broken store degrades the cart
// to in-memory-only operation instead of failing mutations.
type snapshotStore struct {
	store  mystore.Store[Snapshot]
	nower  mytime.Nower
	logger mylog.Logger
}

func newSnapshotStore(store mystore.Store[Snapshot], nower mytime.Nower, logger mylog.Logger) snapshotStore {
	return snapshotStore{
		store:  store,
		nower:  nower,
		logger: logger,
	}
}

// load returns the persisted line items for a session, or false when there is
// no usable snapshot. Expired and version-mismatched snapshots are deleted on
// read, so stale data cannot resurrect later.
func (s snapshotStore) load(c context.Context, sessionUID string) ([]LineItem, bool) {
	snapshot, found, err := s.store.Get(c, sessionUID)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Discarding unreadable cart snapshot: %s", err)
		s.discard(c, sessionUID)
		return nil, false
	}
	if !found {
		return nil, false
	}

	if snapshot.Version != snapshotVersion {
		s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Discarding cart snapshot with version %d", snapshot.Version)
		s.discard(c, sessionUID)
		return nil, false
	}

	if s.nower.Now().Sub(snapshot.UpdatedAt) >= SnapshotTTL {
		s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Discarding cart snapshot last touched at %s", snapshot.UpdatedAt)
		s.discard(c, sessionUID)
		return nil, false
	}

	return snapshot.Items, true
}

func (s snapshotStore) save(c context.Context, sessionUID string, items []LineItem) {
	err := s.store.Put(c, sessionUID, Snapshot{
		SessionUID: sessionUID,
		Version:    snapshotVersion,
		Items:      items,
		UpdatedAt:  s.nower.Now(),
	})
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error persisting cart snapshot: %s", err)
	}
}

func (s snapshotStore) discard(c context.Context, sessionUID string) {
	err := s.store.Delete(c, sessionUID)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error discarding cart snapshot: %s", err)
	}
}
