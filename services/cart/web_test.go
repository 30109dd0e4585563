package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
	"github.com/bellavista/restobackend/services/menu"
)

var (
	kabsa = menu.Item{
		UID:       "dish_chicken_kabsa",
		Name:      "Chicken Kabsa",
		Category:  "mains",
		Price:     4500,
		Currency:  "SAR",
		Available: true,
	}
	seasonalCatch = menu.Item{
		UID:       "dish_seasonal_catch",
		Name:      "Seasonal Catch",
		Category:  "mains",
		Price:     9500,
		Currency:  "SAR",
		Available: false,
	}
)

func TestCartWebService(t *testing.T) {
	c := context.TODO()

	t.Run("Add item", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/session_1/items",
			strings.NewReader(`{"menuItemUid":"dish_chicken_kabsa","quantity":2}`))
		assert.NoError(t, err)
		request.Host = "localhost"
		request.Header.Set("Content-type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"itemCount": 2`)
		assert.Contains(t, got, `"subtotal": 9000`)
		assert.Contains(t, got, `"tax": 1350`)
		assert.Contains(t, got, `"currency": "SAR"`)
	})

	t.Run("Add unknown item", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_unknown").Return(menu.Item{}, false, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/session_1/items",
			strings.NewReader(`{"menuItemUid":"dish_unknown","quantity":1}`))
		assert.NoError(t, err)
		request.Host = "localhost"
		request.Header.Set("Content-type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Contains(t, response.Body.String(), "dish_unknown not found")
	})

	t.Run("Add unavailable item", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_seasonal_catch").Return(seasonalCatch, true, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/session_1/items",
			strings.NewReader(`{"menuItemUid":"dish_seasonal_catch","quantity":1}`))
		assert.NoError(t, err)
		request.Host = "localhost"
		request.Header.Set("Content-type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusConflict, response.Code)
		assert.Contains(t, response.Body.String(), "currently unavailable")
	})

	t.Run("Add with invalid quantity", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/session_1/items",
			strings.NewReader(`{"menuItemUid":"dish_chicken_kabsa","quantity":11}`))
		assert.NoError(t, err)
		request.Host = "localhost"
		request.Header.Set("Content-type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "outside the allowed range")
	})

	t.Run("Get cart with delivery totals", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)
		addItemViaWeb(t, router, "session_1", `{"menuItemUid":"dish_chicken_kabsa","quantity":2}`)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/cart/session_1?orderType=delivery", nil)
		assert.NoError(t, err)
		request.Host = "localhost"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"deliveryFee": 1500`)
		assert.Contains(t, got, `"serviceCharge": 0`)
		assert.Contains(t, got, `"grandTotal": 11850`)
	})

	t.Run("Get cart with unknown order type", func(t *testing.T) {
		router, _, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/cart/session_1?orderType=drive-through", nil)
		assert.NoError(t, err)
		request.Host = "localhost"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "unknown order type")
	})

	t.Run("Update quantity", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)
		addItemViaWeb(t, router, "session_1", `{"menuItemUid":"dish_chicken_kabsa","quantity":2}`)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/cart/session_1/items/dish_chicken_kabsa",
			strings.NewReader(`{"quantity":5}`))
		assert.NoError(t, err)
		request.Host = "localhost"
		request.Header.Set("Content-type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"itemCount": 5`)
		assert.Contains(t, got, `"subtotal": 22500`)
	})

	t.Run("Remove item", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)
		addItemViaWeb(t, router, "session_1", `{"menuItemUid":"dish_chicken_kabsa","quantity":2}`)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/cart/session_1/items/dish_chicken_kabsa", nil)
		assert.NoError(t, err)
		request.Host = "localhost"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `"itemCount": 0`)
	})

	t.Run("Clear cart", func(t *testing.T) {
		router, catalog, ctrl := setupWebService(t, c)
		defer ctrl.Finish()

		// given
		catalog.EXPECT().GetItem(gomock.Any(), "dish_chicken_kabsa").Return(kabsa, true, nil)
		addItemViaWeb(t, router, "session_1", `{"menuItemUid":"dish_chicken_kabsa","quantity":2}`)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/cart/session_1", nil)
		assert.NoError(t, err)
		request.Host = "localhost"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)

		request, err = http.NewRequest(http.MethodGet, "/api/cart/session_1", nil)
		assert.NoError(t, err)
		request.Host = "localhost"
		response = httptest.NewRecorder()
		router.ServeHTTP(response, request)
		assert.Contains(t, response.Body.String(), `"itemCount": 0`)
	})
}

func setupWebService(t *testing.T, c context.Context) (*mux.Router, *menu.MockCatalog, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	store, _, err := mystore.NewInMemoryStore[Snapshot](c)
	assert.NoError(t, err)

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	catalog := menu.NewMockCatalog(ctrl)

	logger := mylog.New("carttest")
	service := NewService(store, nower, logger)

	router := mux.NewRouter()
	NewWebService(service, catalog, logger).RegisterEndpoints(c, router)

	return router, catalog, ctrl
}

func addItemViaWeb(t *testing.T, router *mux.Router, sessionUID string, body string) {
	request, err := http.NewRequest(http.MethodPost, "/api/cart/"+sessionUID+"/items", strings.NewReader(body))
	assert.NoError(t, err)
	request.Host = "localhost"
	request.Header.Set("Content-type", "application/json")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	assert.Equal(t, http.StatusOK, response.Code)
}
