package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/bellavista/restobackend/lib/mylog"
	"github.com/bellavista/restobackend/lib/mypublisher"
	"github.com/bellavista/restobackend/lib/mypubsub"
	"github.com/bellavista/restobackend/lib/myqueue"
	"github.com/bellavista/restobackend/lib/mystore"
	"github.com/bellavista/restobackend/lib/mytime"
	"github.com/bellavista/restobackend/lib/myuuid"
	"github.com/bellavista/restobackend/services/cart"
	"github.com/bellavista/restobackend/services/menu"
	"github.com/bellavista/restobackend/services/order"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()
	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	menuStore, _, err := mystore.New[menu.Item](c)
	if err != nil {
		log.Fatalf("Error creating menu store: %s", err)
	}
	menuService := menu.NewService(menuStore, mylog.New("menu"))
	err = menuService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error starting menu service: %s", err)
	}

	snapshotStore, _, err := mystore.New[cart.Snapshot](c)
	if err != nil {
		log.Fatalf("Error creating cart snapshot store: %s", err)
	}
	cartService := cart.NewService(snapshotStore, nower, mylog.New("cart"))
	cart.NewWebService(cartService, menuService.Catalog(), mylog.New("cart")).RegisterEndpoints(c, router)

	orderStore, _, err := mystore.New[order.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	orderService := order.NewService(orderStore, cartService, order.NewIntake(queue), nower, uuider, mylog.New("order"), publisher)
	err = orderService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error starting order service: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/menu)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
