package usecase

import (
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComposeChangeMessage(t *testing.T) {
	departed := time.Date(2025, 4, 12, 18, 5, 0, 0, time.UTC)

	tests := []struct {
		name   string
		change entity.Change
		want   string
	}{
		{
			"status change",
			entity.Change{Type: entity.ChangeStatus, OldValue: "scheduled", NewValue: "active"},
			"Flight AA100 status has changed from scheduled to active.",
		},
		{
			"status change with unknown old value",
			entity.Change{Type: entity.ChangeStatus, NewValue: "active"},
			"Flight AA100 status has changed from unknown to active.",
		},
		{
			"delay",
			entity.Change{Type: entity.ChangeDelay, DelayMinutes: 45},
			"Flight AA100 has been delayed by 45 minutes.",
		},
		{
			"gate change",
			entity.Change{Type: entity.ChangeGate, OldValue: "A1", NewValue: "B7"},
			"Flight AA100 gate has changed from A1 to B7.",
		},
		{
			"gate change from unassigned",
			entity.Change{Type: entity.ChangeGate, NewValue: "B7"},
			"Flight AA100 gate has changed from unassigned to B7.",
		},
		{
			"departure",
			entity.Change{Type: entity.ChangeDeparture, Timestamp: &departed},
			"Flight AA100 has departed at 6:05:00 PM.",
		},
		{
			"departure without timestamp",
			entity.Change{Type: entity.ChangeDeparture},
			"Flight AA100 has departed at recently.",
		},
		{
			"arrival",
			entity.Change{Type: entity.ChangeArrival, Timestamp: &departed},
			"Flight AA100 has arrived at 6:05:00 PM.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeChangeMessage("AA100", tt.change))
		})
	}
}

func TestComposeChangeMessage_UnknownType(t *testing.T) {
	msg := ComposeChangeMessage("AA100", entity.Change{Type: "DIVERSION"})
	assert.Contains(t, msg, "Update for flight AA100")
}

func TestComposeRuleMessage(t *testing.T) {
	change := entity.Change{Type: entity.ChangeDelay, DelayMinutes: 20}
	msg := ComposeRuleMessage("Morning watch", "AA100", &change)
	assert.Equal(t, "Morning watch: Flight AA100 has been delayed by 20 minutes.", msg)

	msg = ComposeRuleMessage("Morning watch", "AA100", nil)
	assert.Equal(t, "Morning watch: conditions met for flight AA100.", msg)
}

func TestComposeTitle(t *testing.T) {
	tests := []struct {
		changeType entity.ChangeType
		want       string
	}{
		{entity.ChangeStatus, "Flight Status Change"},
		{entity.ChangeDelay, "Flight Delay"},
		{entity.ChangeGate, "Gate Change"},
		{entity.ChangeDeparture, "Flight Departure"},
		{entity.ChangeArrival, "Flight Arrival"},
		{"DIVERSION", "Flight Update"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComposeTitle(tt.changeType))
	}
}

func TestComposeRuleTitle(t *testing.T) {
	assert.Equal(t, "Rule Triggered: Morning watch", ComposeRuleTitle("Morning watch"))
}

func TestComposeEmail(t *testing.T) {
	subject, htmlBody, textBody := ComposeEmail("Gate Change", "Flight AA100 gate has changed from A1 to B7.")

	assert.Equal(t, "Gate Change", subject)
	assert.Equal(t, "<h2>Gate Change</h2><p>Flight AA100 gate has changed from A1 to B7.</p>", htmlBody)
	assert.Equal(t, "Flight AA100 gate has changed from A1 to B7.", textBody)
}
