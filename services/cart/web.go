package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bellavista/restobackend/lib/mycontext"
	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/myhttp"
	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/services/menu"
)

type webService struct {
	service *Service
	catalog menu.Catalog
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(service *Service, catalog menu.Catalog, logger mylog.Logger) *webService {
	return &webService{
		service: service,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart/{sessionUID}", s.cartDetailsPage()).Methods("GET")
	router.HandleFunc("/api/cart/{sessionUID}", s.clearCartPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/{sessionUID}/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/{sessionUID}/items/{lineItemUID}", s.updateQuantityPage()).Methods("PUT")
	router.HandleFunc("/api/cart/{sessionUID}/items/{lineItemUID}", s.removeItemPage()).Methods("DELETE")
}

type addItemRequest struct {
	MenuItemUID    string         `json:"menuItemUid"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations,omitzero"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart plus its derived totals, as rendered to the UI.
type CartView struct {
	SessionUID    string     `json:"sessionUid"`
	OrderType     OrderType  `json:"orderType,omitempty"`
	Items         []LineItem `json:"items"`
	ItemCount     int        `json:"itemCount"`
	Subtotal      int        `json:"subtotal"`
	Tax           int        `json:"tax"`
	DeliveryFee   int        `json:"deliveryFee"`
	ServiceCharge int        `json:"serviceCharge"`
	GrandTotal    int        `json:"grandTotal"`
	Currency      string     `json:"currency"`
}

func newCartView(crt Cart, orderType OrderType) CartView {
	return CartView{
		SessionUID:    crt.SessionUID,
		OrderType:     orderType,
		Items:         crt.Items,
		ItemCount:     crt.ItemCount(),
		Subtotal:      crt.Subtotal(),
		Tax:           crt.Tax(),
		DeliveryFee:   crt.DeliveryFee(orderType),
		ServiceCharge: crt.ServiceCharge(orderType),
		GrandTotal:    crt.GrandTotal(orderType),
		Currency:      "SAR",
	}
}

func (s *webService) cartDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		orderType, err := orderTypeFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		crt, err := s.service.Get(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, toWebError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartView(crt, orderType))
	}
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		req := addItemRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		item, found, err := s.catalog.GetItem(c, req.MenuItemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 3, myerrors.NewNotFoundError(fmt.Errorf("menu item with uid %s not found", req.MenuItemUID)))
			return
		}

		crt, err := s.service.AddItem(c, sessionUID, item, req.Quantity, req.Customizations)
		if err != nil {
			errorWriter.WriteError(c, w, 4, toWebError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartView(crt, ""))
	}
}

func (s *webService) updateQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		lineItemUID := mux.Vars(r)["lineItemUID"]

		req := updateQuantityRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		crt, err := s.service.UpdateQuantity(c, sessionUID, lineItemUID, req.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 2, toWebError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartView(crt, ""))
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		lineItemUID := mux.Vars(r)["lineItemUID"]

		crt, err := s.service.RemoveItem(c, sessionUID, lineItemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, toWebError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartView(crt, ""))
	}
}

func (s *webService) clearCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		err := s.service.Clear(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, toWebError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

func orderTypeFromRequest(r *http.Request) (OrderType, error) {
	raw := r.URL.Query().Get("orderType")
	if raw == "" {
		return "", nil
	}

	orderType := OrderType(raw)
	if !orderType.IsValid() {
		return "", myerrors.NewInvalidInputErrorf("unknown order type %q", raw)
	}

	return orderType, nil
}

// toWebError picks the http status for the cart error taxonomy. Wrapping
// keeps the typed error reachable through errors.As for callers that care.
func toWebError(err error) error {
	var unavailable ItemUnavailableError
	var invalidQuantity InvalidQuantityError
	var limitExceeded CartLimitExceededError
	var emptyCart EmptyCartError

	switch {
	case errors.As(err, &unavailable) || errors.As(err, &limitExceeded):
		return myerrors.NewConflictError(err)
	case errors.As(err, &invalidQuantity) || errors.As(err, &emptyCart):
		return myerrors.NewInvalidInputError(err)
	default:
		return myerrors.NewInternalError(err)
	}
}
