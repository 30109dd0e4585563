package cartevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bellavista/restobackend/lib/myerrors"
	"github.com/bellavista/restobackend/lib/myevents"
)

const (
	TopicName          = "cart"
	cartCheckedOutName = TopicName + ".checkedout"
)

type CartEventService interface {
	Subscribe(c context.Context) error
	OnCartCheckedOut(c context.Context, topic string, event CartCheckedOut) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CartEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case cartCheckedOutName:
		{
			event := CartCheckedOut{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCartCheckedOut(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event %s", envelope.EventTypeName))
	}
}

// CartCheckedOut is emitted when a cart has been converted into an order.
type CartCheckedOut struct {
	SessionUID string
	OrderUID   string
}

func (e CartCheckedOut) GetEventTypeName() string {
	return cartCheckedOutName
}

func (e CartCheckedOut) GetAggregateName() string {
	return e.SessionUID
}
