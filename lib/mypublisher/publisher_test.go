package mypublisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bellavista/restobackend/lib/myevents"
	"github.com/bellavista/restobackend/lib/mypubsub"
	"github.com/bellavista/restobackend/lib/myqueue"
	"github.com/bellavista/restobackend/lib/mytime"
)

type testEvent struct {
	AggregateUID string
}

func (e testEvent) GetEventTypeName() string {
	return "test.happened"
}

func (e testEvent) GetAggregateName() string {
	return e.AggregateUID
}

func TestTransactionalPublisher(t *testing.T) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pubsub := mypubsub.NewMockPubSub(ctrl)
	queue := myqueue.NewMockTaskQueuer(ctrl)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	publisher, cleanup, err := New(c, pubsub, queue, nower)
	assert.NoError(t, err)
	defer cleanup()

	router := mux.NewRouter()
	publisher.RegisterEndpoints(c, router)

	// given: publishing stores the envelope and schedules a trigger
	var trigger myqueue.Task
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(c context.Context, task myqueue.Task) error {
			trigger = task
			return nil
		})

	err = publisher.Publish(c, "test", testEvent{AggregateUID: "aggregate_1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, trigger.UID)
	assert.Equal(t, "/pubsub/test/"+trigger.UID, trigger.WebhookURLPath)

	// when: the trigger fires, the envelope is pushed to pubsub exactly once
	var published string
	pubsub.EXPECT().Publish(gomock.Any(), "test", gomock.Any()).DoAndReturn(
		func(c context.Context, topic string, data string) error {
			published = data
			return nil
		})

	response := fireTrigger(t, router, trigger.WebhookURLPath)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, published, `"EventTypeName":"test.happened"`)
	assert.Contains(t, published, `"AggregateUID":"aggregate_1"`)
}

func TestEnveloperIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	enveloper := newEnveloper(nower)

	first, err := enveloper.do("test", testEvent{AggregateUID: "aggregate_1"})
	assert.NoError(t, err)
	second, err := enveloper.do("test", testEvent{AggregateUID: "aggregate_1"})
	assert.NoError(t, err)

	// same event yields the same uid, so re-publication de-duplicates
	assert.Equal(t, first.UID, second.UID)
	assert.False(t, first.Published)

	other, err := enveloper.do("test", testEvent{AggregateUID: "aggregate_2"})
	assert.NoError(t, err)
	assert.NotEqual(t, first.UID, other.UID)
}

func fireTrigger(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodPut, path, nil)
	assert.NoError(t, err)
	request.Host = "localhost"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	return response
}

var _ myevents.Event = testEvent{}
