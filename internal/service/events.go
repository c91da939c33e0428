package service

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/cache"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/pkg/logger"

	"go.uber.org/zap"
)

// markSeatStatus records the new status of a ticket's conflict key in the
// availability cache. Cache failures never fail the decision that already
// committed to the store.
func markSeatStatus(ctx context.Context, c cache.SeatAvailabilityCache, ticket *model.Ticket, status model.AvailabilityStatus) {
	if err := c.Set(ctx, ticket.TrainNumber, ticket.SeatNumber, ticket.TravelDate, status); err != nil {
		logger.WithComponent("service").Warn("availability cache update failed",
			zap.String("train_number", ticket.TrainNumber),
			zap.String("seat_number", ticket.SeatNumber),
			zap.Error(err))
	}
}

// invalidateSeatStatus drops the cached status of a ticket's conflict key.
func invalidateSeatStatus(ctx context.Context, c cache.SeatAvailabilityCache, ticket *model.Ticket) {
	if err := c.Invalidate(ctx, ticket.TrainNumber, ticket.SeatNumber, ticket.TravelDate); err != nil {
		logger.WithComponent("service").Warn("availability cache invalidate failed",
			zap.String("train_number", ticket.TrainNumber),
			zap.String("seat_number", ticket.SeatNumber),
			zap.Error(err))
	}
}

// publishLifecycleEvent enqueues an audit event. Best-effort: a queue
// failure is logged and swallowed.
func publishLifecycleEvent(ctx context.Context, q queue.BookingEventQueue, ticket *model.Ticket, eventType model.BookingEventType) {
	event := &model.BookingEvent{
		TicketID:   ticket.ID,
		BookingRef: ticket.BookingRef,
		EventType:  eventType,
	}
	if err := q.PublishEvent(ctx, event); err != nil {
		logger.WithComponent("service").Warn("publish booking event failed",
			zap.Int("ticket_id", ticket.ID),
			zap.String("event_type", string(eventType)),
			zap.Error(err))
	}
}
