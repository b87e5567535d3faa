package repository

import (
	"context"
	"errors"

	"flightwatch-service/internal/domain/entity"
)

// ErrFlightNotFound is returned when the provider has no data for a flight.
// Callers treat it as a skip, not a failure.
var ErrFlightNotFound = errors.New("flight not found")

// FlightProvider fetches the latest snapshot for a flight from the
// external flight-data service.
type FlightProvider interface {
	FetchSnapshot(ctx context.Context, flightNumber string) (*entity.FlightSnapshot, error)
}
