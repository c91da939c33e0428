package handler_test

import (
	"context"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Book(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	args := m.Called(ctx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockBookingService) CheckAvailability(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (model.AvailabilityStatus, error) {
	args := m.Called(ctx, trainNumber, seatNumber, travelDate)
	return args.Get(0).(model.AvailabilityStatus), args.Error(1)
}

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) List(ctx context.Context, page int) ([]*model.Ticket, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *MockTicketService) Reschedule(ctx context.Context, id int, newDate time.Time, newTime string) (*model.Ticket, error) {
	args := m.Called(ctx, id, newDate, newTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketService) Cancel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTrainService struct {
	mock.Mock
}

func (m *MockTrainService) List(ctx context.Context) ([]*model.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Train), args.Error(1)
}
