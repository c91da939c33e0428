package worker

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/repository"
	"github.com/ChrisHanshia/Ticket-Booking-API/pkg/logger"

	"go.uber.org/zap"
)

type BookingEventWorker interface {
	// Start subscribes to the booking-event queue and persists audit rows.
	Start(ctx context.Context) error
}

type BookingEventWorkerImpl struct {
	repo  repository.BookingEventRepository
	queue queue.BookingEventQueue
}

func NewBookingEventWorker(repo repository.BookingEventRepository, queue queue.BookingEventQueue) BookingEventWorker {
	return &BookingEventWorkerImpl{
		repo:  repo,
		queue: queue,
	}
}

func (w *BookingEventWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeEvents(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			_, err := w.repo.Create(ctx, msg.Data)

			if err != nil {
				// store hiccup: requeue and let the queue retry later
				logger.WithComponent("worker").Warn("persist booking event failed",
					zap.Int("ticket_id", msg.Data.TicketID),
					zap.String("event_type", string(msg.Data.EventType)),
					zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
