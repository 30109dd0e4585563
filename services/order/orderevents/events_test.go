package orderevents

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bellavista/restobackend/lib/myevents"
)

type capturingEventService struct {
	received []OrderSubmitted
}

func (s *capturingEventService) Subscribe(c context.Context) error {
	return nil
}

func (s *capturingEventService) OnOrderSubmitted(c context.Context, topic string, event OrderSubmitted) error {
	s.received = append(s.received, event)
	return nil
}

func TestDispatchEvent(t *testing.T) {
	c := context.TODO()

	t.Run("Order submitted", func(t *testing.T) {
		// given
		service := &capturingEventService{}
		event := OrderSubmitted{
			OrderUID:   "order_123",
			SessionUID: "session_1",
			Total:      11850,
		}

		// when
		err := DispatchEvent(c, pushRequest(t, event), service)

		// then
		assert.NoError(t, err)
		assert.Len(t, service.received, 1)
		assert.Equal(t, event, service.received[0])
	})

	t.Run("Unknown event type", func(t *testing.T) {
		// given
		service := &capturingEventService{}
		envelope := myevents.EventEnvelope{
			Topic:         TopicName,
			EventTypeName: "order.vanished",
		}

		// when
		err := DispatchEvent(c, pushRequestFromEnvelope(t, envelope), service)

		// then
		assert.Error(t, err)
		assert.Empty(t, service.received)
	})

	t.Run("Malformed push request", func(t *testing.T) {
		// given
		service := &capturingEventService{}

		// when
		err := DispatchEvent(c, strings.NewReader("this is not json"), service)

		// then
		assert.Error(t, err)
		assert.Empty(t, service.received)
	})
}

func pushRequest(t *testing.T, event OrderSubmitted) *strings.Reader {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	return pushRequestFromEnvelope(t, myevents.EventEnvelope{
		Topic:         TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
}

func pushRequestFromEnvelope(t *testing.T, envelope myevents.EventEnvelope) *strings.Reader {
	data, err := json.Marshal(envelope)
	assert.NoError(t, err)

	body, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: data,
			ID:   "message_1",
		},
		Subscription: TopicName,
	})
	assert.NoError(t, err)

	return strings.NewReader(string(body))
}
