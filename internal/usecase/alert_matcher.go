package usecase

import (
	"flightwatch-service/internal/domain/entity"
)

// AlertMatch pairs a fired alert with the change that fired it
type AlertMatch struct {
	Alert  entity.Alert
	Change entity.Change
}

// MatchAlerts selects which direct alerts fire for the detected changes.
// Only active, non-rule alerts participate. Delay alerts additionally
// require the delay to reach the alert's threshold (nil threshold means
// zero). Multiple alerts may match the same change, each producing an
// independent notification.
func MatchAlerts(changes []entity.Change, alerts []entity.Alert) []AlertMatch {
	var matches []AlertMatch

	for _, change := range changes {
		for _, alert := range alerts {
			if !alert.Active || !alert.IsDirect() {
				continue
			}

			if alert.Type == entity.AlertDelay {
				if change.Type != entity.ChangeDelay {
					continue
				}
				threshold := 0
				if alert.Threshold != nil {
					threshold = *alert.Threshold
				}
				if change.DelayMinutes < threshold {
					continue
				}
			} else if string(alert.Type) != string(change.Type) {
				continue
			}

			matches = append(matches, AlertMatch{Alert: alert, Change: change})
		}
	}

	return matches
}
