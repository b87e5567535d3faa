package repository

import (
	"context"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrackedFlightRepository implements the TrackedFlightRepository interface
type GormTrackedFlightRepository struct {
	db *gorm.DB
}

// NewGormTrackedFlightRepository creates a new GORM tracked flight repository
func NewGormTrackedFlightRepository(db *gorm.DB) repository.TrackedFlightRepository {
	return &GormTrackedFlightRepository{
		db: db,
	}
}

// FindByID finds a tracked flight by id
func (r *GormTrackedFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TrackedFlight, error) {
	var model TrackedFlightModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTrackedFlightEntity(&model), nil
}

// FindWithActiveDirectAlerts finds flights with at least one active
// non-rule alert, preloading those alerts and the owning user
func (r *GormTrackedFlightRepository) FindWithActiveDirectAlerts(ctx context.Context) ([]*entity.TrackedFlight, error) {
	subquery := r.db.Model(&AlertModel{}).
		Distinct("flight_id").
		Where("active = ? AND rule_id IS NULL", true)

	var models []TrackedFlightModel
	result := r.db.WithContext(ctx).
		Preload("Alerts", "active = ? AND rule_id IS NULL", true).
		Preload("User").
		Where("id IN (?)", subquery).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	flights := make([]*entity.TrackedFlight, 0, len(models))
	for i := range models {
		flights = append(flights, toTrackedFlightEntity(&models[i]))
	}
	return flights, nil
}

// UpdateState persists the provider-derived fields of a tracked flight
func (r *GormTrackedFlightRepository) UpdateState(ctx context.Context, flight *entity.TrackedFlight) error {
	updates := map[string]interface{}{
		"status":              flight.Status,
		"gate":                flight.Gate,
		"terminal":            flight.Terminal,
		"scheduled_departure": flight.ScheduledDeparture,
		"actual_departure":    flight.ActualDeparture,
		"scheduled_arrival":   flight.ScheduledArrival,
		"actual_arrival":      flight.ActualArrival,
		"updated_at":          time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&TrackedFlightModel{}).
		Where("id = ?", flight.ID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update tracked flight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no tracked flight with id: %s", flight.ID)
	}
	return nil
}
