package model

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"
	"github.com/google/uuid"
)

const (
	// Seat rows run A..S, columns 1..25.
	seatRowMin = 'A'
	seatRowMax = 'S'
	seatColMin = 1
	seatColMax = 25
)

// AvailabilityStatus answers whether a conflict key is currently occupied.
type AvailabilityStatus string

const (
	SeatAvailable AvailabilityStatus = "available"
	SeatBooked    AvailabilityStatus = "booked"
)

// Ticket is the persisted reservation. The triple
// (train_number, seat_number, travel_date) is unique across all tickets.
type Ticket struct {
	ID               int       `json:"id" db:"id"`
	BookingRef       uuid.UUID `json:"booking_ref" db:"booking_ref"`
	PassengerName    string    `json:"passenger_name" db:"passenger_name"`
	TrainNumber      string    `json:"train_number" db:"train_number"`
	SeatNumber       string    `json:"seat_number" db:"seat_number"`
	TravelDate       time.Time `json:"date" db:"travel_date"`
	DepartureTime    string    `json:"time" db:"departure_time"`
	BoardingStation  string    `json:"boarding_station" db:"boarding_station"`
	DepartureStation string    `json:"departure_station" db:"departure_station"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// TicketResponse is the wire shape of a ticket, with date and time rendered
// in their request formats.
type TicketResponse struct {
	ID               int    `json:"id"`
	BookingRef       string `json:"booking_ref"`
	PassengerName    string `json:"passenger_name"`
	TrainNumber      string `json:"train_number"`
	SeatNumber       string `json:"seat_number"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	BoardingStation  string `json:"boarding_station"`
	DepartureStation string `json:"departure_station"`
}

func (t *Ticket) ToResponse() *TicketResponse {
	return &TicketResponse{
		ID:               t.ID,
		BookingRef:       t.BookingRef.String(),
		PassengerName:    t.PassengerName,
		TrainNumber:      t.TrainNumber,
		SeatNumber:       t.SeatNumber,
		Date:             t.TravelDate.Format(DateLayout),
		Time:             t.DepartureTime,
		BoardingStation:  t.BoardingStation,
		DepartureStation: t.DepartureStation,
	}
}

// DateLayout is the wire format for travel dates.
const DateLayout = "2006-01-02"

// ValidateSeatNumber checks the seat grammar: exactly one row letter A-S and
// one column number 1-25, separated by a single space ("A 1", "S 25").
func ValidateSeatNumber(seat string) error {
	row, col, found := strings.Cut(seat, " ")
	if !found {
		return apperrors.ErrInvalidSeatFormat
	}
	if len(row) != 1 || row[0] < seatRowMin || row[0] > seatRowMax {
		return apperrors.ErrInvalidSeatFormat
	}
	n, err := strconv.Atoi(col)
	if err != nil || n < seatColMin || n > seatColMax {
		return apperrors.ErrInvalidSeatFormat
	}
	return nil
}

// ValidateDepartureTime checks strict 24-hour HH:MM ("09:05", not "9:5").
func ValidateDepartureTime(departureTime string) error {
	if len(departureTime) != 5 || departureTime[2] != ':' {
		return apperrors.ErrInvalidTimeFormat
	}
	for i := 0; i < 5; i++ {
		if i == 2 {
			continue
		}
		if departureTime[i] < '0' || departureTime[i] > '9' {
			return apperrors.ErrInvalidTimeFormat
		}
	}
	hour := int(departureTime[0]-'0')*10 + int(departureTime[1]-'0')
	minute := int(departureTime[3]-'0')*10 + int(departureTime[4]-'0')
	if hour > 23 || minute > 59 {
		return apperrors.ErrInvalidTimeFormat
	}
	return nil
}

// ParseTravelDate parses a wire-format calendar date.
func ParseTravelDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// Today returns the current UTC calendar date at midnight, the reference
// point for the future-dated-creation rule.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
