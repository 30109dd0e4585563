package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/myevents"
)

const (
	TopicName          = "order"
	orderSubmittedName = TopicName + ".submitted"
)

type OrderEventService interface {
	Subscribe(c context.Context) error
	OnOrderSubmitted(c context.Context, topic string, event OrderSubmitted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service OrderEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderSubmittedName:
		{
			event := OrderSubmitted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderSubmitted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event %s", envelope.EventTypeName))
	}
}

// OrderSubmitted is emitted when an order has been created from a cart.
// The external notification service subscribes to this topic.
type OrderSubmitted struct {
	OrderUID   string
	SessionUID string
	Total      int
}

func (e OrderSubmitted) GetEventTypeName() string {
	return orderSubmittedName
}

func (e OrderSubmitted) GetAggregateName() string {
	return e.OrderUID
}
