package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	List(ctx context.Context, limit, offset int) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	FindByConflictKey(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (*model.Ticket, error)
	ConflictExists(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, excludeID int) (bool, error)
	UpdateSchedule(ctx context.Context, id int, travelDate time.Time, departureTime string) (*model.Ticket, error)
	Delete(ctx context.Context, id int) error
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const uniqueViolationCode = "23505"

// isConflictKeyViolation reports whether err is the store rejecting a
// duplicate (train_number, seat_number, travel_date) triple. The constraint
// is the authoritative double-booking guard.
func isConflictKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (
		booking_ref, passenger_name, train_number, seat_number,
		travel_date, departure_time, boarding_station, departure_station)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, booking_ref, passenger_name, train_number, seat_number,
			travel_date, departure_time, boarding_station, departure_station,
			created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		ticket.BookingRef, ticket.PassengerName, ticket.TrainNumber, ticket.SeatNumber,
		ticket.TravelDate, ticket.DepartureTime, ticket.BoardingStation, ticket.DepartureStation,
	).Scan(
		&ticket.ID,
		&ticket.BookingRef,
		&ticket.PassengerName,
		&ticket.TrainNumber,
		&ticket.SeatNumber,
		&ticket.TravelDate,
		&ticket.DepartureTime,
		&ticket.BoardingStation,
		&ticket.DepartureStation,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if isConflictKeyViolation(err) {
			return nil, apperrors.ErrSeatAlreadyReserved
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*model.Ticket, error) {
	query := `
		SELECT id, booking_ref, passenger_name, train_number, seat_number,
				travel_date, departure_time, boarding_station, departure_station,
				created_at, updated_at
		FROM tickets
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.BookingRef,
			&ticket.PassengerName,
			&ticket.TrainNumber,
			&ticket.SeatNumber,
			&ticket.TravelDate,
			&ticket.DepartureTime,
			&ticket.BoardingStation,
			&ticket.DepartureStation,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := `
		SELECT id, booking_ref, passenger_name, train_number, seat_number,
				travel_date, departure_time, boarding_station, departure_station,
				created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.BookingRef,
		&ticket.PassengerName,
		&ticket.TrainNumber,
		&ticket.SeatNumber,
		&ticket.TravelDate,
		&ticket.DepartureTime,
		&ticket.BoardingStation,
		&ticket.DepartureStation,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindByConflictKey(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (*model.Ticket, error) {
	query := `
		SELECT id, booking_ref, passenger_name, train_number, seat_number,
				travel_date, departure_time, boarding_station, departure_station,
				created_at, updated_at
		FROM tickets
		WHERE train_number = $1 AND seat_number = $2 AND travel_date = $3
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, trainNumber, seatNumber, travelDate).Scan(
		&ticket.ID,
		&ticket.BookingRef,
		&ticket.PassengerName,
		&ticket.TrainNumber,
		&ticket.SeatNumber,
		&ticket.TravelDate,
		&ticket.DepartureTime,
		&ticket.BoardingStation,
		&ticket.DepartureStation,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) ConflictExists(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, excludeID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE train_number = $1 AND seat_number = $2 AND travel_date = $3 AND id <> $4
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, trainNumber, seatNumber, travelDate, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *TicketRepositoryImpl) UpdateSchedule(ctx context.Context, id int, travelDate time.Time, departureTime string) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET travel_date = $1, departure_time = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, booking_ref, passenger_name, train_number, seat_number,
			travel_date, departure_time, boarding_station, departure_station,
			created_at, updated_at
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, travelDate, departureTime, time.Now().UTC(), id).Scan(
		&ticket.ID,
		&ticket.BookingRef,
		&ticket.PassengerName,
		&ticket.TrainNumber,
		&ticket.SeatNumber,
		&ticket.TravelDate,
		&ticket.DepartureTime,
		&ticket.BoardingStation,
		&ticket.DepartureStation,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		if isConflictKeyViolation(err) {
			return nil, apperrors.ErrSeatAlreadyReserved
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM tickets
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	// repeated cancellation of the same id must surface not-found
	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}
