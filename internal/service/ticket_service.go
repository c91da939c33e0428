package service

import (
	"context"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/cache"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/repository"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"
)

// PageSize is the fixed number of tickets per listing page.
const PageSize = 5

type TicketService interface {
	// List returns one page of tickets in insertion order; page is 1-indexed.
	List(ctx context.Context, page int) ([]*model.Ticket, error)
	// Reschedule moves a ticket to a new date and time. Seat and train stay
	// untouched; both format rules and the double-booking invariant are
	// re-checked against the new date.
	Reschedule(ctx context.Context, id int, newDate time.Time, newTime string) (*model.Ticket, error)
	// Cancel permanently removes a ticket. Missing ids, including repeated
	// cancellation, surface as ErrTicketNotFound.
	Cancel(ctx context.Context, id int) error
}

type TicketServiceImpl struct {
	repo       repository.TicketRepository
	seatCache  cache.SeatAvailabilityCache
	eventQueue queue.BookingEventQueue
}

func NewTicketService(
	repo repository.TicketRepository,
	seatCache cache.SeatAvailabilityCache,
	eventQueue queue.BookingEventQueue,
) TicketService {
	return &TicketServiceImpl{
		repo:       repo,
		seatCache:  seatCache,
		eventQueue: eventQueue,
	}
}

func (s *TicketServiceImpl) List(ctx context.Context, page int) ([]*model.Ticket, error) {
	if page < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, PageSize, (page-1)*PageSize)
}

func (s *TicketServiceImpl) Reschedule(ctx context.Context, id int, newDate time.Time, newTime string) (*model.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateDepartureTime(newTime); err != nil {
		return nil, err
	}
	if newDate.Before(model.Today()) {
		return nil, apperrors.ErrInvalidDate
	}

	// moving to the new date must not land on an occupied seat; the ticket's
	// own row is excluded so rescheduling time-only is always allowed
	conflict, err := s.repo.ConflictExists(ctx, ticket.TrainNumber, ticket.SeatNumber, newDate, ticket.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.ErrSeatAlreadyReserved
	}

	updated, err := s.repo.UpdateSchedule(ctx, id, newDate, newTime)
	if err != nil {
		return nil, err
	}

	// the seat moved between dates: drop the old key, mark the new one
	invalidateSeatStatus(ctx, s.seatCache, ticket)
	markSeatStatus(ctx, s.seatCache, updated, model.SeatBooked)
	publishLifecycleEvent(ctx, s.eventQueue, updated, model.EventTicketRescheduled)

	return updated, nil
}

func (s *TicketServiceImpl) Cancel(ctx context.Context, id int) error {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateSeatStatus(ctx, s.seatCache, ticket)
	publishLifecycleEvent(ctx, s.eventQueue, ticket, model.EventTicketCancelled)

	return nil
}
