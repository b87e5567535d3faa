package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRuleRepository implements the RuleRepository interface
type GormRuleRepository struct {
	db *gorm.DB
}

// NewGormRuleRepository creates a new GORM rule repository
func NewGormRuleRepository(db *gorm.DB) repository.RuleRepository {
	return &GormRuleRepository{
		db: db,
	}
}

// FindActive finds all active rules with conditions, alerts and user
func (r *GormRuleRepository) FindActive(ctx context.Context) ([]*entity.Rule, error) {
	var models []RuleModel
	result := r.db.WithContext(ctx).
		Preload("Conditions").
		Preload("Alerts").
		Preload("User").
		Where("active = ?", true).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]*entity.Rule, 0, len(models))
	for i := range models {
		rules = append(rules, toRuleEntity(&models[i]))
	}
	return rules, nil
}
