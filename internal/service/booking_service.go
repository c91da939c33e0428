package service

import (
	"context"
	"errors"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/cache"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/repository"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"
	"github.com/ChrisHanshia/Ticket-Booking-API/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Book validates a candidate ticket and performs the reservation
	// decision. Exactly one row is inserted on success, none on failure.
	Book(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	// CheckAvailability answers whether a conflict key is occupied.
	// Best-effort read; it is not a reservation hold.
	CheckAvailability(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (model.AvailabilityStatus, error)
}

type BookingServiceImpl struct {
	repo       repository.TicketRepository
	seatCache  cache.SeatAvailabilityCache
	eventQueue queue.BookingEventQueue
}

func NewBookingService(
	repo repository.TicketRepository,
	seatCache cache.SeatAvailabilityCache,
	eventQueue queue.BookingEventQueue,
) BookingService {
	return &BookingServiceImpl{
		repo:       repo,
		seatCache:  seatCache,
		eventQueue: eventQueue,
	}
}

func (s *BookingServiceImpl) Book(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	// validation order is fixed: seat, time, date; first violation wins
	if err := model.ValidateSeatNumber(ticket.SeatNumber); err != nil {
		return nil, err
	}
	if err := model.ValidateDepartureTime(ticket.DepartureTime); err != nil {
		return nil, err
	}
	if ticket.TravelDate.Before(model.Today()) {
		return nil, apperrors.ErrInvalidDate
	}

	// early exit on an already-taken seat; the unique constraint on the
	// insert below is the authoritative guard under concurrency
	_, err := s.repo.FindByConflictKey(ctx, ticket.TrainNumber, ticket.SeatNumber, ticket.TravelDate)
	if err == nil {
		return nil, apperrors.ErrSeatAlreadyReserved
	}
	if !errors.Is(err, apperrors.ErrTicketNotFound) {
		return nil, err
	}

	ticket.BookingRef = uuid.New()
	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	markSeatStatus(ctx, s.seatCache, created, model.SeatBooked)
	publishLifecycleEvent(ctx, s.eventQueue, created, model.EventTicketBooked)

	return created, nil
}

func (s *BookingServiceImpl) CheckAvailability(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (model.AvailabilityStatus, error) {
	status, found, err := s.seatCache.Get(ctx, trainNumber, seatNumber, travelDate)
	if err != nil {
		logger.WithComponent("service").Warn("availability cache read failed", zap.Error(err))
	}
	if found {
		return status, nil
	}

	_, err = s.repo.FindByConflictKey(ctx, trainNumber, seatNumber, travelDate)
	switch {
	case err == nil:
		status = model.SeatBooked
	case errors.Is(err, apperrors.ErrTicketNotFound):
		status = model.SeatAvailable
	default:
		return "", err
	}

	if cacheErr := s.seatCache.Set(ctx, trainNumber, seatNumber, travelDate, status); cacheErr != nil {
		logger.WithComponent("service").Warn("availability cache write failed", zap.Error(cacheErr))
	}

	return status, nil
}
