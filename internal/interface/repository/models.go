package repository

import (
	"time"

	"flightwatch-service/internal/domain/entity"

	"github.com/google/uuid"
)

// GORM models for database mapping. The web layer owns the schema; these
// mirror the tables the processing cycle reads and writes.

type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;unique"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type TrackedFlightModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	FlightNumber       string    `gorm:"column:flight_number;index"`
	Status             string    `gorm:"column:status"`
	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time
	Gate               string `gorm:"column:gate"`
	Terminal           string `gorm:"column:terminal"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	User               *UserModel   `gorm:"foreignKey:UserID"`
	Alerts             []AlertModel `gorm:"foreignKey:FlightID"`
}

func (TrackedFlightModel) TableName() string {
	return "tracked_flights"
}

type AlertModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;index"`
	FlightID  uuid.UUID  `gorm:"type:uuid;index"`
	Type      string     `gorm:"column:type"`
	Active    bool       `gorm:"column:active;index"`
	Threshold *int       `gorm:"column:threshold"`
	RuleID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AlertModel) TableName() string {
	return "alerts"
}

type ConditionModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RuleID   uuid.UUID `gorm:"type:uuid;index"`
	FlightID uuid.UUID `gorm:"type:uuid"`
	Field    string    `gorm:"column:field"`
	Operator string    `gorm:"column:operator"`
	Value    string    `gorm:"column:value"`
}

func (ConditionModel) TableName() string {
	return "conditions"
}

type RuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Operator    string    `gorm:"column:operator"`
	Active      bool      `gorm:"column:active;index"`
	Schedule    string    `gorm:"column:schedule"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Conditions  []ConditionModel `gorm:"foreignKey:RuleID"`
	Alerts      []AlertModel     `gorm:"foreignKey:RuleID"`
	User        *UserModel       `gorm:"foreignKey:UserID"`
}

func (RuleModel) TableName() string {
	return "rules"
}

type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title     string     `gorm:"column:title"`
	Message   string     `gorm:"column:message"`
	Type      string     `gorm:"column:type"`
	Read      bool       `gorm:"column:read"`
	UserID    uuid.UUID  `gorm:"type:uuid;index"`
	FlightID  uuid.UUID  `gorm:"type:uuid;index"`
	RuleID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// Converters between GORM models and domain entities

func toUserEntity(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func toAlertEntity(m AlertModel) entity.Alert {
	return entity.Alert{
		ID:        m.ID,
		UserID:    m.UserID,
		FlightID:  m.FlightID,
		Type:      entity.AlertType(m.Type),
		Active:    m.Active,
		Threshold: m.Threshold,
		RuleID:    m.RuleID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAlertEntities(models []AlertModel) []entity.Alert {
	alerts := make([]entity.Alert, 0, len(models))
	for _, m := range models {
		alerts = append(alerts, toAlertEntity(m))
	}
	return alerts
}

func toTrackedFlightEntity(m *TrackedFlightModel) *entity.TrackedFlight {
	return &entity.TrackedFlight{
		ID:                 m.ID,
		UserID:             m.UserID,
		FlightNumber:       m.FlightNumber,
		Status:             m.Status,
		ScheduledDeparture: m.ScheduledDeparture,
		ActualDeparture:    m.ActualDeparture,
		ScheduledArrival:   m.ScheduledArrival,
		ActualArrival:      m.ActualArrival,
		Gate:               m.Gate,
		Terminal:           m.Terminal,
		Alerts:             toAlertEntities(m.Alerts),
		User:               toUserEntity(m.User),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toConditionEntity(m ConditionModel) entity.Condition {
	return entity.Condition{
		ID:       m.ID,
		RuleID:   m.RuleID,
		FlightID: m.FlightID,
		Field:    entity.ConditionField(m.Field),
		Operator: entity.ConditionOperator(m.Operator),
		Value:    m.Value,
	}
}

func toRuleEntity(m *RuleModel) *entity.Rule {
	conditions := make([]entity.Condition, 0, len(m.Conditions))
	for _, c := range m.Conditions {
		conditions = append(conditions, toConditionEntity(c))
	}
	return &entity.Rule{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Operator:    entity.RuleOperator(m.Operator),
		Active:      m.Active,
		Schedule:    m.Schedule,
		Conditions:  conditions,
		Alerts:      toAlertEntities(m.Alerts),
		User:        toUserEntity(m.User),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
