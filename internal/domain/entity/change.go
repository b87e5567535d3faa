package entity

import (
	"fmt"
	"time"
)

// ChangeType identifies one kind of detected flight change
type ChangeType string

const (
	ChangeStatus    ChangeType = "STATUS_CHANGE"
	ChangeDelay     ChangeType = "DELAY"
	ChangeGate      ChangeType = "GATE_CHANGE"
	ChangeDeparture ChangeType = "DEPARTURE"
	ChangeArrival   ChangeType = "ARRIVAL"
)

// ParseChangeType validates a raw change type string at the data-entry boundary
func ParseChangeType(s string) (ChangeType, error) {
	switch ChangeType(s) {
	case ChangeStatus, ChangeDelay, ChangeGate, ChangeDeparture, ChangeArrival:
		return ChangeType(s), nil
	}
	return "", fmt.Errorf("unknown change type: %q", s)
}

// Change describes one detected difference between the stored flight
// state and a fresh snapshot. Changes are ephemeral: computed per cycle,
// persisted only as Notification side effects.
//
// Which fields are meaningful depends on Type: status and gate changes
// carry OldValue/NewValue, delays carry OldTime/NewTime/DelayMinutes,
// departures and arrivals carry Timestamp.
type Change struct {
	Type         ChangeType
	OldValue     string
	NewValue     string
	OldTime      *time.Time
	NewTime      *time.Time
	DelayMinutes int
	Timestamp    *time.Time
}
