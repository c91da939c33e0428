package queue

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingEventQueue interface {
	// PublishEvent enqueues a lifecycle audit event.
	PublishEvent(ctx context.Context, event *model.BookingEvent) error
	// SubscribeEvents delivers queued events to a worker.
	SubscribeEvents(ctx context.Context) (<-chan Delivery, error)
}

// BookingEventQueueImpl is the in-process implementation backed by a
// buffered channel, used when no Redis is available.
type BookingEventQueueImpl struct {
	ch chan *model.BookingEvent
}

func NewBookingEventQueue(bufferSize int) BookingEventQueue {
	return &BookingEventQueueImpl{
		ch: make(chan *model.BookingEvent, bufferSize),
	}
}

func (q *BookingEventQueueImpl) PublishEvent(ctx context.Context, event *model.BookingEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *BookingEventQueueImpl) SubscribeEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- event
						}
					},
				}
			}
		}
	}()

	return out, nil
}
