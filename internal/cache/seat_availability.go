package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ChrisHanshia/Ticket-Booking-API/internal/model"

	"github.com/redis/go-redis/v9"
)

// availabilityTTL bounds how stale a cached availability answer can be.
// The cache is a best-effort read; the database constraint is the guard.
const availabilityTTL = 30 * time.Second

type SeatAvailabilityCache interface {
	// Get returns the cached status for a conflict key; found is false on a miss.
	Get(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (status model.AvailabilityStatus, found bool, err error)
	// Set records the status for a conflict key with a short TTL.
	Set(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, status model.AvailabilityStatus) error
	// Invalidate drops the cached entry for a conflict key.
	Invalidate(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) error
}

type SeatAvailabilityCacheImpl struct {
	client *redis.Client
}

func NewSeatAvailabilityCache(client *redis.Client) SeatAvailabilityCache {
	return &SeatAvailabilityCacheImpl{
		client: client,
	}
}

func (c *SeatAvailabilityCacheImpl) getSeatKey(trainNumber, seatNumber string, travelDate time.Time) string {
	return fmt.Sprintf("seat:%s:%s:%s", trainNumber, seatNumber, travelDate.Format(model.DateLayout))
}

func (c *SeatAvailabilityCacheImpl) Get(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) (model.AvailabilityStatus, bool, error) {
	key := c.getSeatKey(trainNumber, seatNumber, travelDate)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	status := model.AvailabilityStatus(val)
	if status != model.SeatAvailable && status != model.SeatBooked {
		return "", false, nil
	}
	return status, true, nil
}

func (c *SeatAvailabilityCacheImpl) Set(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time, status model.AvailabilityStatus) error {
	key := c.getSeatKey(trainNumber, seatNumber, travelDate)
	return c.client.Set(ctx, key, string(status), availabilityTTL).Err()
}

func (c *SeatAvailabilityCacheImpl) Invalidate(ctx context.Context, trainNumber, seatNumber string, travelDate time.Time) error {
	key := c.getSeatKey(trainNumber, seatNumber, travelDate)
	return c.client.Del(ctx, key).Err()
}
