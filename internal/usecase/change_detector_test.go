package usecase

import (
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func baseFlight() *entity.TrackedFlight {
	return &entity.TrackedFlight{
		FlightNumber:       "AA100",
		Status:             "scheduled",
		ScheduledDeparture: timePtr(time.Date(2025, 4, 12, 18, 0, 0, 0, time.UTC)),
		ScheduledArrival:   timePtr(time.Date(2025, 4, 12, 21, 0, 0, 0, time.UTC)),
		Gate:               "A1",
		Terminal:           "1",
	}
}

func baseSnapshot() *entity.FlightSnapshot {
	return &entity.FlightSnapshot{
		FlightNumber:       "AA100",
		Status:             "scheduled",
		ScheduledDeparture: timePtr(time.Date(2025, 4, 12, 18, 0, 0, 0, time.UTC)),
		ScheduledArrival:   timePtr(time.Date(2025, 4, 12, 21, 0, 0, 0, time.UTC)),
		Gate:               "A1",
		Terminal:           "1",
	}
}

func TestDetectChanges_NoDifference(t *testing.T) {
	changes := DetectChanges(baseFlight(), baseSnapshot())
	assert.Empty(t, changes)
}

func TestDetectChanges_GateOnly(t *testing.T) {
	latest := baseSnapshot()
	latest.Gate = "B7"

	changes := DetectChanges(baseFlight(), latest)

	require.Len(t, changes, 1)
	assert.Equal(t, entity.ChangeGate, changes[0].Type)
	assert.Equal(t, "A1", changes[0].OldValue)
	assert.Equal(t, "B7", changes[0].NewValue)
}

func TestDetectChanges_EmptyGateDoesNotFire(t *testing.T) {
	latest := baseSnapshot()
	latest.Gate = ""

	changes := DetectChanges(baseFlight(), latest)
	assert.Empty(t, changes)
}

func TestDetectChanges_DelayThreshold(t *testing.T) {
	tests := []struct {
		name        string
		shift       time.Duration
		wantDelay   bool
		wantMinutes int
	}{
		{"no shift", 0, false, 0},
		{"five minutes", 5 * time.Minute, false, 0},
		{"exactly ten minutes", 10 * time.Minute, false, 0},
		{"just over ten minutes", 10*time.Minute + time.Second, true, 10},
		{"eleven minutes", 11 * time.Minute, true, 11},
		{"moved earlier by thirty minutes", -30 * time.Minute, true, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := baseFlight()
			latest := baseSnapshot()
			shifted := previous.ScheduledDeparture.Add(tt.shift)
			latest.ScheduledDeparture = &shifted

			changes := DetectChanges(previous, latest)

			if !tt.wantDelay {
				assert.Empty(t, changes)
				return
			}
			require.Len(t, changes, 1)
			assert.Equal(t, entity.ChangeDelay, changes[0].Type)
			assert.Equal(t, tt.wantMinutes, changes[0].DelayMinutes)
			assert.Equal(t, previous.ScheduledDeparture, changes[0].OldTime)
			assert.Equal(t, &shifted, changes[0].NewTime)
		})
	}
}

func TestDetectChanges_DelayNeedsBothTimes(t *testing.T) {
	previous := baseFlight()
	previous.ScheduledDeparture = nil
	latest := baseSnapshot()
	latest.ScheduledDeparture = timePtr(time.Date(2025, 4, 12, 19, 0, 0, 0, time.UTC))

	changes := DetectChanges(previous, latest)
	assert.Empty(t, changes)
}

func TestDetectChanges_DepartureScenario(t *testing.T) {
	previous := baseFlight()
	latest := baseSnapshot()
	latest.Status = "active"
	actual := time.Date(2025, 4, 12, 18, 5, 0, 0, time.UTC)
	latest.ActualDeparture = &actual

	changes := DetectChanges(previous, latest)

	require.Len(t, changes, 2)
	assert.Equal(t, entity.ChangeStatus, changes[0].Type)
	assert.Equal(t, "scheduled", changes[0].OldValue)
	assert.Equal(t, "active", changes[0].NewValue)
	assert.Equal(t, entity.ChangeDeparture, changes[1].Type)
	require.NotNil(t, changes[1].Timestamp)
	assert.Equal(t, actual, *changes[1].Timestamp)
}

func TestDetectChanges_DepartureFallsBackToScheduled(t *testing.T) {
	previous := baseFlight()
	latest := baseSnapshot()
	latest.Status = "active"
	latest.ActualDeparture = nil

	changes := DetectChanges(previous, latest)

	require.Len(t, changes, 2)
	assert.Equal(t, entity.ChangeDeparture, changes[1].Type)
	assert.Equal(t, latest.ScheduledDeparture, changes[1].Timestamp)
}

func TestDetectChanges_ArrivalScenario(t *testing.T) {
	previous := baseFlight()
	previous.Status = "active"
	latest := baseSnapshot()
	latest.Status = "landed"
	actual := time.Date(2025, 4, 12, 21, 12, 0, 0, time.UTC)
	latest.ActualArrival = &actual

	changes := DetectChanges(previous, latest)

	require.Len(t, changes, 2)
	assert.Equal(t, entity.ChangeStatus, changes[0].Type)
	assert.Equal(t, entity.ChangeArrival, changes[1].Type)
	require.NotNil(t, changes[1].Timestamp)
	assert.Equal(t, actual, *changes[1].Timestamp)
}

func TestDetectChanges_AlreadyActiveNoDeparture(t *testing.T) {
	previous := baseFlight()
	previous.Status = "active"
	latest := baseSnapshot()
	latest.Status = "active"

	changes := DetectChanges(previous, latest)
	assert.Empty(t, changes)
}

func TestDetectChanges_MultipleChanges(t *testing.T) {
	previous := baseFlight()
	latest := baseSnapshot()
	latest.Status = "active"
	latest.Gate = "C3"
	shifted := previous.ScheduledDeparture.Add(45 * time.Minute)
	latest.ScheduledDeparture = &shifted

	changes := DetectChanges(previous, latest)

	require.Len(t, changes, 4)
	assert.Equal(t, entity.ChangeStatus, changes[0].Type)
	assert.Equal(t, entity.ChangeDelay, changes[1].Type)
	assert.Equal(t, 45, changes[1].DelayMinutes)
	assert.Equal(t, entity.ChangeGate, changes[2].Type)
	assert.Equal(t, entity.ChangeDeparture, changes[3].Type)
}

func TestDetectChanges_EmptyStatusDoesNotFire(t *testing.T) {
	latest := baseSnapshot()
	latest.Status = ""

	changes := DetectChanges(baseFlight(), latest)
	assert.Empty(t, changes)
}
