package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventType names a ticket lifecycle transition.
type BookingEventType string

const (
	EventTicketBooked      BookingEventType = "ticket_booked"
	EventTicketRescheduled BookingEventType = "ticket_rescheduled"
	EventTicketCancelled   BookingEventType = "ticket_cancelled"
)

// IsValid reports whether the event type is one of the known transitions.
func (t BookingEventType) IsValid() bool {
	switch t {
	case EventTicketBooked, EventTicketRescheduled, EventTicketCancelled:
		return true
	}
	return false
}

// BookingEvent is an audit record of a lifecycle transition. Events are
// written asynchronously and never gate the booking decision itself.
type BookingEvent struct {
	ID         int              `json:"id" db:"id"`
	TicketID   int              `json:"ticket_id" db:"ticket_id"`
	BookingRef uuid.UUID        `json:"booking_ref" db:"booking_ref"`
	EventType  BookingEventType `json:"event_type" db:"event_type"`
	OccurredAt time.Time        `json:"occurred_at" db:"occurred_at"`
}
