package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Double booking is prevented by the unique constraint on the conflict key:
// two concurrent inserts for the same (train_number, seat_number, travel_date)
// cannot both commit. Application-level pre-checks are an early exit only.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS trains (
	id SERIAL PRIMARY KEY,
	train_number TEXT NOT NULL UNIQUE,
	train_name TEXT NOT NULL,
	train_type TEXT NOT NULL,
	starting_station TEXT NOT NULL,
	departure_station TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tickets (
	id SERIAL PRIMARY KEY,
	booking_ref UUID NOT NULL,
	passenger_name TEXT NOT NULL,
	train_number TEXT NOT NULL,
	seat_number TEXT NOT NULL,
	travel_date DATE NOT NULL,
	departure_time TEXT NOT NULL,
	boarding_station TEXT NOT NULL,
	departure_station TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT tickets_conflict_key UNIQUE (train_number, seat_number, travel_date)
);

CREATE TABLE IF NOT EXISTS booking_events (
	id SERIAL PRIMARY KEY,
	ticket_id INTEGER NOT NULL,
	booking_ref UUID NOT NULL,
	event_type TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const seedTrainsSQL = `
INSERT INTO trains (train_number, train_name, train_type, starting_station, departure_station)
VALUES
	('T1', 'Express Train 1', 'Express', 'Trivandrum', 'Delhi'),
	('T2', 'Local Train 1', 'Local', 'Thirunelveli', 'Trivandrum'),
	('T3', 'Express Train 2', 'Express', 'Nagercoil', 'Bangalore'),
	('T4', 'Express Train 3', 'Express', 'Nagercoil', 'Mumbai'),
	('T5', 'Local Train 2', 'Local', 'Nagercoil', 'Madurai')
ON CONFLICT (train_number) DO NOTHING
`

// EnsureSchema creates the tables if missing and seeds the train catalog.
// The catalog lives only in the store; there is no in-memory copy.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, seedTrainsSQL); err != nil {
		return err
	}
	return nil
}
