package repository

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingEventRepository interface {
	Create(ctx context.Context, event *model.BookingEvent) (*model.BookingEvent, error)
	ListByTicketID(ctx context.Context, ticketID int) ([]*model.BookingEvent, error)
}

type BookingEventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingEventRepository(pool *pgxpool.Pool) BookingEventRepository {
	return &BookingEventRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingEventRepositoryImpl) Create(ctx context.Context, event *model.BookingEvent) (*model.BookingEvent, error) {
	query := `
		INSERT INTO booking_events (ticket_id, booking_ref, event_type)
		VALUES ($1, $2, $3)
		RETURNING id, ticket_id, booking_ref, event_type, occurred_at
	`

	err := r.pool.QueryRow(ctx, query,
		event.TicketID, event.BookingRef, event.EventType,
	).Scan(
		&event.ID,
		&event.TicketID,
		&event.BookingRef,
		&event.EventType,
		&event.OccurredAt,
	)

	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *BookingEventRepositoryImpl) ListByTicketID(ctx context.Context, ticketID int) ([]*model.BookingEvent, error) {
	query := `
		SELECT id, ticket_id, booking_ref, event_type, occurred_at
		FROM booking_events
		WHERE ticket_id = $1
		ORDER BY occurred_at, id
	`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.BookingEvent, 0)

	for rows.Next() {
		var event model.BookingEvent
		err := rows.Scan(
			&event.ID,
			&event.TicketID,
			&event.BookingRef,
			&event.EventType,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
