package entity

import (
	"time"

	"github.com/google/uuid"
)

// User owns tracked flights, rules, alerts and notifications
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
