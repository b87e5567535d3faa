package usecase

import (
	"testing"

	"flightwatch-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func directAlert(alertType entity.AlertType) entity.Alert {
	return entity.Alert{
		ID:     uuid.New(),
		Type:   alertType,
		Active: true,
	}
}

func TestMatchAlerts_ExactTypeMatch(t *testing.T) {
	gateAlert := directAlert(entity.AlertGateChange)
	statusAlert := directAlert(entity.AlertStatusChange)

	changes := []entity.Change{{Type: entity.ChangeGate, OldValue: "A1", NewValue: "B7"}}

	matches := MatchAlerts(changes, []entity.Alert{gateAlert, statusAlert})

	require.Len(t, matches, 1)
	assert.Equal(t, gateAlert.ID, matches[0].Alert.ID)
	assert.Equal(t, entity.ChangeGate, matches[0].Change.Type)
}

func TestMatchAlerts_InactiveSkipped(t *testing.T) {
	alert := directAlert(entity.AlertGateChange)
	alert.Active = false

	changes := []entity.Change{{Type: entity.ChangeGate}}
	assert.Empty(t, MatchAlerts(changes, []entity.Alert{alert}))
}

func TestMatchAlerts_RuleOwnedSkipped(t *testing.T) {
	ruleID := uuid.New()
	alert := directAlert(entity.AlertGateChange)
	alert.RuleID = &ruleID

	changes := []entity.Change{{Type: entity.ChangeGate}}
	assert.Empty(t, MatchAlerts(changes, []entity.Alert{alert}))
}

func TestMatchAlerts_DelayThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold *int
		minutes   int
		want      bool
	}{
		{"nil threshold matches any delay", nil, 1, true},
		{"below threshold", intPtr(30), 29, false},
		{"at threshold", intPtr(30), 30, true},
		{"above threshold", intPtr(30), 45, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := directAlert(entity.AlertDelay)
			alert.Threshold = tt.threshold

			changes := []entity.Change{{Type: entity.ChangeDelay, DelayMinutes: tt.minutes}}
			matches := MatchAlerts(changes, []entity.Alert{alert})

			if tt.want {
				assert.Len(t, matches, 1)
			} else {
				assert.Empty(t, matches)
			}
		})
	}
}

func TestMatchAlerts_DelayAlertIgnoresOtherChanges(t *testing.T) {
	alert := directAlert(entity.AlertDelay)
	changes := []entity.Change{{Type: entity.ChangeGate}}
	assert.Empty(t, MatchAlerts(changes, []entity.Alert{alert}))
}

func TestMatchAlerts_MultipleAlertsSameChange(t *testing.T) {
	first := directAlert(entity.AlertDelay)
	second := directAlert(entity.AlertDelay)
	second.Threshold = intPtr(10)

	changes := []entity.Change{{Type: entity.ChangeDelay, DelayMinutes: 20}}
	matches := MatchAlerts(changes, []entity.Alert{first, second})

	assert.Len(t, matches, 2)
}

func TestMatchAlerts_MultipleChanges(t *testing.T) {
	gateAlert := directAlert(entity.AlertGateChange)
	departureAlert := directAlert(entity.AlertDeparture)

	changes := []entity.Change{
		{Type: entity.ChangeStatus},
		{Type: entity.ChangeGate},
		{Type: entity.ChangeDeparture},
	}

	matches := MatchAlerts(changes, []entity.Alert{gateAlert, departureAlert})

	require.Len(t, matches, 2)
	assert.Equal(t, entity.ChangeGate, matches[0].Change.Type)
	assert.Equal(t, entity.ChangeDeparture, matches[1].Change.Type)
}
