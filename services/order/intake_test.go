package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bellavista/restobackend/lib/myqueue"
)

func TestQueueingIntake(t *testing.T) {
	c := context.TODO()

	t.Run("Accepted order schedules the notification webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// given
		queue := myqueue.NewMockTaskQueuer(ctrl)
		var enqueued myqueue.Task
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(c context.Context, task myqueue.Task) error {
				enqueued = task
				return nil
			})
		intake := NewIntake(queue)

		// when
		ack, err := intake.Submit(c, Order{UID: "order_123"})

		// then
		assert.NoError(t, err)
		assert.True(t, ack.Accepted)
		assert.True(t, ack.NotificationSent)
		assert.Equal(t, "order_123", enqueued.UID)
		assert.Equal(t, "/api/notification/order/order_123", enqueued.WebhookURLPath)
		assert.NotEmpty(t, enqueued.Payload)
	})

	t.Run("Queue failure still acknowledges the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// given
		queue := myqueue.NewMockTaskQueuer(ctrl)
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))
		intake := NewIntake(queue)

		// when
		ack, err := intake.Submit(c, Order{UID: "order_123"})

		// then
		assert.NoError(t, err)
		assert.True(t, ack.Accepted)
		assert.False(t, ack.NotificationSent)
	})
}
