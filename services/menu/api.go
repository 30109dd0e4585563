package menu

import "context"

//go:generate mockgen -source=api.go -package menu -destination catalog_mock.go Catalog
type Catalog interface {
	ListItems(c context.Context) ([]Item, error)
	GetItem(c context.Context, itemUID string) (Item, bool, error)
}
