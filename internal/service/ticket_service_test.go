package service_test

import (
	"context"
	"testing"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/queue"
	"github.com/ChrisHanshia/Ticket-Booking-API/internal/service"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLifecycleFixture(t *testing.T) (service.BookingService, service.TicketService, *memoryTicketRepository, *memorySeatCache) {
	t.Helper()
	repo := newMemoryTicketRepository()
	seatCache := newMemorySeatCache()
	eventQueue := queue.NewBookingEventQueue(64)
	return service.NewBookingService(repo, seatCache, eventQueue),
		service.NewTicketService(repo, seatCache, eventQueue),
		repo, seatCache
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		newDate := model.Today().AddDate(0, 0, 7)
		updated, err := ticketSvc.Reschedule(ctx, created.ID, newDate, "10:00")

		require.NoError(t, err)
		assert.True(t, updated.TravelDate.Equal(newDate))
		assert.Equal(t, "10:00", updated.DepartureTime)
		// seat and train stay untouched
		assert.Equal(t, created.SeatNumber, updated.SeatNumber)
		assert.Equal(t, created.TrainNumber, updated.TrainNumber)
		assert.Equal(t, created.ID, updated.ID)

		// a subsequent list shows the new values
		page, err := ticketSvc.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.True(t, page[0].TravelDate.Equal(newDate))
		assert.Equal(t, "10:00", page[0].DepartureTime)
	})

	t.Run("TimeOnlyOnSameDateAllowed", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		// same date, new time: the ticket's own row is not a conflict
		updated, err := ticketSvc.Reschedule(ctx, created.ID, created.TravelDate, "18:45")
		require.NoError(t, err)
		assert.Equal(t, "18:45", updated.DepartureTime)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ticketSvc, _, _ := newLifecycleFixture(t)

		_, err := ticketSvc.Reschedule(ctx, 404, model.Today().AddDate(0, 0, 1), "10:00")
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})

	t.Run("InvalidTime", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		_, err = ticketSvc.Reschedule(ctx, created.ID, model.Today().AddDate(0, 0, 2), "9:5")
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
	})

	t.Run("PastDate", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		_, err = ticketSvc.Reschedule(ctx, created.ID, model.Today().AddDate(0, 0, -1), "10:00")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	})

	t.Run("IntoOccupiedSeat", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		first, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		// same seat, different date
		second := validTicket()
		second.TravelDate = model.Today().AddDate(0, 0, 2)
		other, err := bookingSvc.Book(ctx, second)
		require.NoError(t, err)

		// moving the second ticket onto the first one's date must fail
		_, err = ticketSvc.Reschedule(ctx, other.ID, first.TravelDate, "10:00")
		assert.ErrorIs(t, err, apperrors.ErrSeatAlreadyReserved)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingSvc, ticketSvc, repo, seatCache := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		require.NoError(t, ticketSvc.Cancel(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)

		// availability cache entry for the conflict key is dropped
		_, found, _ := seatCache.Get(ctx, created.TrainNumber, created.SeatNumber, created.TravelDate)
		assert.False(t, found)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ticketSvc, _, _ := newLifecycleFixture(t)

		assert.ErrorIs(t, ticketSvc.Cancel(ctx, 404), apperrors.ErrTicketNotFound)
	})

	t.Run("RepeatedCancel", func(t *testing.T) {
		bookingSvc, ticketSvc, _, _ := newLifecycleFixture(t)

		created, err := bookingSvc.Book(ctx, validTicket())
		require.NoError(t, err)

		require.NoError(t, ticketSvc.Cancel(ctx, created.ID))
		assert.ErrorIs(t, ticketSvc.Cancel(ctx, created.ID), apperrors.ErrTicketNotFound)
	})
}
