package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackedFlightRepository defines the interface for tracked flight persistence
type TrackedFlightRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TrackedFlight, error)

	// FindWithActiveDirectAlerts returns flights having at least one active
	// alert that is not owned by a rule, with those alerts and the owning
	// user preloaded.
	FindWithActiveDirectAlerts(ctx context.Context) ([]*entity.TrackedFlight, error)

	// UpdateState persists the flight's provider-derived fields
	// (status, gate, terminal, times).
	UpdateState(ctx context.Context, flight *entity.TrackedFlight) error
}
