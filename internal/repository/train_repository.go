package repository

import (
	"context"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"
	apperrors "github.com/ChrisHanshia/Ticket-Booking-API/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TrainRepository interface {
	List(ctx context.Context) ([]*model.Train, error)
	FindByTrainNumber(ctx context.Context, trainNumber string) (*model.Train, error)
}

type TrainRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTrainRepository(pool *pgxpool.Pool) TrainRepository {
	return &TrainRepositoryImpl{
		pool: pool,
	}
}

func (r *TrainRepositoryImpl) List(ctx context.Context) ([]*model.Train, error) {
	query := `
		SELECT id, train_number, train_name, train_type, starting_station, departure_station
		FROM trains
		ORDER BY train_number
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trains := make([]*model.Train, 0)

	for rows.Next() {
		var train model.Train
		err := rows.Scan(
			&train.ID,
			&train.TrainNumber,
			&train.TrainName,
			&train.TrainType,
			&train.StartingStation,
			&train.DepartureStation,
		)
		if err != nil {
			return nil, err
		}
		trains = append(trains, &train)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trains, nil
}

func (r *TrainRepositoryImpl) FindByTrainNumber(ctx context.Context, trainNumber string) (*model.Train, error) {
	query := `
		SELECT id, train_number, train_name, train_type, starting_station, departure_station
		FROM trains
		WHERE train_number = $1
	`

	var train model.Train
	err := r.pool.QueryRow(ctx, query, trainNumber).Scan(
		&train.ID,
		&train.TrainNumber,
		&train.TrainName,
		&train.TrainType,
		&train.StartingStation,
		&train.DepartureStation,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTrainNotFound
		}
		return nil, err
	}

	return &train, nil
}
