package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known provider status values used by change detection
const (
	StatusActive = "active"
	StatusLanded = "landed"
)

// FlightSnapshot is an immutable point-in-time view of a flight as
// reported by the flight-data provider.
type FlightSnapshot struct {
	FlightNumber       string
	Status             string
	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time
	Gate               string
	Terminal           string
	FetchedAt          time.Time
}

// TrackedFlight is a user's persisted subscription to a flight, holding
// the last-known state. It is refreshed every processing cycle.
type TrackedFlight struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	FlightNumber       string
	Status             string
	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time
	Gate               string
	Terminal           string
	Alerts             []Alert
	User               *User
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ApplySnapshot merges a fresh provider snapshot into the stored state.
// Absent snapshot fields keep their previous values.
func (f *TrackedFlight) ApplySnapshot(s *FlightSnapshot) {
	if s.Status != "" {
		f.Status = s.Status
	}
	if s.Gate != "" {
		f.Gate = s.Gate
	}
	if s.Terminal != "" {
		f.Terminal = s.Terminal
	}
	if s.ScheduledDeparture != nil {
		f.ScheduledDeparture = s.ScheduledDeparture
	}
	if s.ActualDeparture != nil {
		f.ActualDeparture = s.ActualDeparture
	}
	if s.ScheduledArrival != nil {
		f.ScheduledArrival = s.ScheduledArrival
	}
	if s.ActualArrival != nil {
		f.ActualArrival = s.ActualArrival
	}
}

// FlightContext is the view a condition is evaluated against: the
// flight's current field values plus this cycle's detected changes.
type FlightContext struct {
	Flight  *TrackedFlight
	Changes []Change
}
