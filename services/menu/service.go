package menu

import (
	"context"
	"sort"

	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mystore"
)

type service struct {
	itemStore mystore.Store[Item]
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Item], logger mylog.Logger) *service {
	return &service{
		itemStore: store,
		logger:    logger,
	}
}

func (s *service) seed(c context.Context) error {
	return s.itemStore.RunInTransaction(c, func(c context.Context) error {
		for _, item := range dishes {
			_, exists, err := s.itemStore.Get(c, item.UID)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
			if exists {
				continue
			}
			err = s.itemStore.Put(c, item.UID, item)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}
		return nil
	})
}

func (s *service) ListItems(c context.Context) ([]Item, error) {
	items, err := s.itemStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

func (s *service) GetItem(c context.Context, itemUID string) (Item, bool, error) {
	item, found, err := s.itemStore.Get(c, itemUID)
	if err != nil {
		return Item{}, false, myerrors.NewInternalError(err)
	}

	return item, found, nil
}
