package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// SnapshotLogRepository archives every provider snapshot fetched during a
// processing cycle, for audit and debugging.
type SnapshotLogRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *entity.FlightSnapshot) error

	// FindLatest returns the most recently archived snapshot for a flight
	// number, or nil when none exists.
	FindLatest(ctx context.Context, flightNumber string) (*entity.FlightSnapshot, error)
}
