package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"

	"github.com/stretchr/testify/mock"
)

// MockTicketRepository is a testify double for repository.TicketRepository.
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	args := m.Called(ctx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context, limit, offset int) ([]*model.Ticket, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByConflictKey(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (*model.Ticket, error) {
	args := m.Called(ctx, trainNumber, seatNumber, travelDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ConflictExists(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, excludeID int) (bool, error) {
	args := m.Called(ctx, trainNumber, seatNumber, travelDate, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) UpdateSchedule(ctx context.Context, id int, travelDate time.Time, departureTime string) (*model.Ticket, error) {
	args := m.Called(ctx, id, travelDate, departureTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memoryTicketRepository is a mutex-guarded in-memory TicketRepository that
// enforces the conflict-key uniqueness the way the database constraint does.
// It backs the concurrency and end-to-end style tests without a live store.
type memoryTicketRepository struct {
	mu      sync.Mutex
	nextID  int
	tickets []*model.Ticket
}

func newMemoryTicketRepository() *memoryTicketRepository {
	return &memoryTicketRepository{nextID: 1}
}

func sameConflictKey(t *model.Ticket, trainNumber, seatNumber string, travelDate time.Time) bool {
	return t.TrainNumber == trainNumber && t.SeatNumber == seatNumber && t.TravelDate.Equal(travelDate)
}

func (r *memoryTicketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tickets {
		if sameConflictKey(existing, ticket.TrainNumber, ticket.SeatNumber, ticket.TravelDate) {
			return nil, apperrors.ErrSeatAlreadyReserved
		}
	}

	stored := *ticket
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++
	r.tickets = append(r.tickets, &stored)

	copied := stored
	return &copied, nil
}

func (r *memoryTicketRepository) List(ctx context.Context, limit, offset int) ([]*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Ticket, 0, limit)
	for i := offset; i < len(r.tickets) && len(result) < limit; i++ {
		copied := *r.tickets[i]
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memoryTicketRepository) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ticket := range r.tickets {
		if ticket.ID == id {
			copied := *ticket
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (r *memoryTicketRepository) FindByConflictKey(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ticket := range r.tickets {
		if sameConflictKey(ticket, trainNumber, seatNumber, travelDate) {
			copied := *ticket
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (r *memoryTicketRepository) ConflictExists(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, excludeID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ticket := range r.tickets {
		if ticket.ID != excludeID && sameConflictKey(ticket, trainNumber, seatNumber, travelDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryTicketRepository) UpdateSchedule(ctx context.Context, id int, travelDate time.Time, departureTime string) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var target *model.Ticket
	for _, ticket := range r.tickets {
		if ticket.ID == id {
			target = ticket
			break
		}
	}
	if target == nil {
		return nil, apperrors.ErrTicketNotFound
	}

	for _, ticket := range r.tickets {
		if ticket.ID != id && sameConflictKey(ticket, target.TrainNumber, target.SeatNumber, travelDate) {
			return nil, apperrors.ErrSeatAlreadyReserved
		}
	}

	target.TravelDate = travelDate
	target.DepartureTime = departureTime
	target.UpdatedAt = time.Now().UTC()

	copied := *target
	return &copied, nil
}

func (r *memoryTicketRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ticket := range r.tickets {
		if ticket.ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTicketNotFound
}

// memorySeatCache is a map-backed cache.SeatAvailabilityCache.
type memorySeatCache struct {
	mu      sync.Mutex
	entries map[string]model.AvailabilityStatus
}

func newMemorySeatCache() *memorySeatCache {
	return &memorySeatCache{entries: make(map[string]model.AvailabilityStatus)}
}

func seatCacheKey(trainNumber, seatNumber string, travelDate time.Time) string {
	return trainNumber + "|" + seatNumber + "|" + travelDate.Format(model.DateLayout)
}

func (c *memorySeatCache) Get(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (model.AvailabilityStatus, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, found := c.entries[seatCacheKey(trainNumber, seatNumber, travelDate)]
	return status, found, nil
}

func (c *memorySeatCache) Set(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, status model.AvailabilityStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[seatCacheKey(trainNumber, seatNumber, travelDate)] = status
	return nil
}

func (c *memorySeatCache) Invalidate(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, seatCacheKey(trainNumber, seatNumber, travelDate))
	return nil
}
