package usecase

import (
	"time"

	"flightwatch-service/internal/domain/entity"
)

// Schedule shifts at or below this threshold are treated as noise,
// not delays.
const delayThreshold = 10 * time.Minute

// DetectChanges compares the stored flight state against a fresh provider
// snapshot and returns the typed changes, in detection order. A single
// comparison may yield several changes. Pure: no side effects.
func DetectChanges(previous *entity.TrackedFlight, latest *entity.FlightSnapshot) []entity.Change {
	var changes []entity.Change

	if latest.Status != "" && latest.Status != previous.Status {
		changes = append(changes, entity.Change{
			Type:     entity.ChangeStatus,
			OldValue: previous.Status,
			NewValue: latest.Status,
		})
	}

	if latest.ScheduledDeparture != nil && previous.ScheduledDeparture != nil {
		diff := latest.ScheduledDeparture.Sub(*previous.ScheduledDeparture)
		if diff < 0 {
			diff = -diff
		}
		if diff > delayThreshold {
			changes = append(changes, entity.Change{
				Type:         entity.ChangeDelay,
				OldTime:      previous.ScheduledDeparture,
				NewTime:      latest.ScheduledDeparture,
				DelayMinutes: int(diff / time.Minute),
			})
		}
	}

	if latest.Gate != "" && latest.Gate != previous.Gate {
		changes = append(changes, entity.Change{
			Type:     entity.ChangeGate,
			OldValue: previous.Gate,
			NewValue: latest.Gate,
		})
	}

	if latest.Status == entity.StatusActive && previous.Status != entity.StatusActive {
		changes = append(changes, entity.Change{
			Type:      entity.ChangeDeparture,
			Timestamp: firstTime(latest.ActualDeparture, latest.ScheduledDeparture),
		})
	}

	if latest.Status == entity.StatusLanded && previous.Status != entity.StatusLanded {
		changes = append(changes, entity.Change{
			Type:      entity.ChangeArrival,
			Timestamp: firstTime(latest.ActualArrival, latest.ScheduledArrival),
		})
	}

	return changes
}

func firstTime(times ...*time.Time) *time.Time {
	for _, t := range times {
		if t != nil {
			return t
		}
	}
	return nil
}
