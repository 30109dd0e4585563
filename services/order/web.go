package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bellavista/restobackend/lib/mycontext"
	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/myhttp"
	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mypublisher"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
	"github.com/bellavista/restobackend/lib/myuuid"
	"github.com/bellavista/restobackend/services/cart/cartevents"
	"github.com/bellavista/restobackend/services/order/orderevents"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Order], carts CartAccess, intake Intake, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *webService {
	return &webService{
		service: newService(store, carts, intake, nower, uuider, logger, pub),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return err
	}
	err = s.service.publisher.CreateTopic(c, cartevents.TopicName)
	if err != nil {
		return err
	}

	router.HandleFunc("/api/checkout/{sessionUID}", s.checkoutPage()).Methods("POST")
	router.HandleFunc("/api/orders", s.orderListPage()).Methods("GET")
	router.HandleFunc("/api/orders/{orderUID}", s.orderDetailsPage()).Methods("GET")
	router.HandleFunc("/api/notification/order/{orderUID}", s.notificationWebhookPage()).Methods("PUT")

	return nil
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		form, err := NewFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		submitted, err := s.service.submitOrder(c, sessionUID, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, submitted)
	}
}

// notificationWebhookPage is the receiving end of the intake's task queue:
// this is where the customer-facing confirmation (email/SMS) would be sent.
func (s *webService) notificationWebhookPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		submitted := Order{}
		err := json.NewDecoder(r.Body).Decode(&submitted)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Notifying %s about %s order %s", submitted.Customer.Email, submitted.Type, orderUID)

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Successfully notified customer about order %s", orderUID),
		})
	}
}

func (s *webService) orderListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orders, err := s.service.listOrders(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *webService) orderDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		submitted, err := s.service.getOrder(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, submitted)
	}
}
