package menu

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bellavista/restobackend/lib/mycontext"
	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/myhttp"
	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mystore"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Item], logger mylog.Logger) *webService {
	return &webService{
		service: newService(store, logger),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.seed(c)
	if err != nil {
		return fmt.Errorf("error seeding menu: %s", err)
	}

	router.HandleFunc("/api/menu", s.listItemsPage()).Methods("GET")
	router.HandleFunc("/api/menu/{itemUID}", s.itemDetailsPage()).Methods("GET")

	return nil
}

// Catalog exposes read-only menu access to the other services.
func (s *webService) Catalog() Catalog {
	return s.service
}

func (s *webService) listItemsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		items, err := s.service.ListItems(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, items)
	}
}

func (s *webService) itemDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		itemUID := mux.Vars(r)["itemUID"]

		item, found, err := s.service.GetItem(c, itemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("menu item with uid %s not found", itemUID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, item)
	}
}
