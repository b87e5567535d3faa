package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// RuleRepository defines the interface for rule persistence
type RuleRepository interface {
	// FindActive returns all active rules with their conditions, alerts
	// and owning user preloaded.
	FindActive(ctx context.Context) ([]*entity.Rule, error)
}
