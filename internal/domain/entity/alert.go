package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertType mirrors ChangeType: each alert subscribes to one kind of change
type AlertType string

const (
	AlertStatusChange AlertType = "STATUS_CHANGE"
	AlertDelay        AlertType = "DELAY"
	AlertGateChange   AlertType = "GATE_CHANGE"
	AlertDeparture    AlertType = "DEPARTURE"
	AlertArrival      AlertType = "ARRIVAL"
)

// ParseAlertType validates a raw alert type at the data-entry boundary
func ParseAlertType(s string) (AlertType, error) {
	switch AlertType(s) {
	case AlertStatusChange, AlertDelay, AlertGateChange, AlertDeparture, AlertArrival:
		return AlertType(s), nil
	}
	return "", fmt.Errorf("unknown alert type: %q", s)
}

// Alert is a per-flight, per-change-type notification subscription.
// Threshold is meaningful only for DELAY alerts (minimum delay minutes).
// Alerts with a RuleID fire through their rule; the rest are direct.
type Alert struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FlightID  uuid.UUID
	Type      AlertType
	Active    bool
	Threshold *int
	RuleID    *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDirect reports whether the alert fires on changes directly,
// outside any rule.
func (a Alert) IsDirect() bool {
	return a.RuleID == nil
}
