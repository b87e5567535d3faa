package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted, user-visible record of a fired alert or rule
type Notification struct {
	ID        uuid.UUID
	Title     string
	Message   string
	Type      string
	Read      bool
	UserID    uuid.UUID
	FlightID  uuid.UUID
	RuleID    *uuid.UUID
	CreatedAt time.Time
}
