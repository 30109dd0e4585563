package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bellavista/restobackend/lib/myqueue"
)

// Ack is the order-intake acknowledgment. The cart core only needs the
// booleans, not the notification delivery details.
type Ack struct {
	Accepted         bool
	NotificationSent bool
}

//go:generate mockgen -source=intake.go -package order -destination intake_mock.go Intake
type Intake interface {
	Submit(c context.Context, order Order) (Ack, error)
}

// queueingIntake hands the accepted order to the notification webhook via
// the task queue. Sending the actual email/SMS is the webhook's problem.
type queueingIntake struct {
	queue myqueue.TaskQueuer
}

func NewIntake(queue myqueue.TaskQueuer) Intake {
	return &queueingIntake{
		queue: queue,
	}
}

func (i *queueingIntake) Submit(c context.Context, order Order) (Ack, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return Ack{}, fmt.Errorf("error marshalling order %s: %s", order.UID, err)
	}

	err = i.queue.Enqueue(c, myqueue.Task{
		UID:            order.UID,
		WebhookURLPath: fmt.Sprintf("/api/notification/order/%s", order.UID),
		Payload:        payload,
	})
	if err != nil {
		return Ack{Accepted: true, NotificationSent: false}, nil
	}

	return Ack{Accepted: true, NotificationSent: true}, nil
}
