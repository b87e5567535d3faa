package usecase

import (
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
)

// ComposeChangeMessage renders the human-readable message for a direct
// alert notification. Templates are deterministic per change type.
func ComposeChangeMessage(flightNumber string, change entity.Change) string {
	switch change.Type {
	case entity.ChangeStatus:
		old := change.OldValue
		if old == "" {
			old = "unknown"
		}
		return fmt.Sprintf("Flight %s status has changed from %s to %s.", flightNumber, old, change.NewValue)
	case entity.ChangeDelay:
		return fmt.Sprintf("Flight %s has been delayed by %d minutes.", flightNumber, change.DelayMinutes)
	case entity.ChangeGate:
		old := change.OldValue
		if old == "" {
			old = "unassigned"
		}
		return fmt.Sprintf("Flight %s gate has changed from %s to %s.", flightNumber, old, change.NewValue)
	case entity.ChangeDeparture:
		return fmt.Sprintf("Flight %s has departed at %s.", flightNumber, formatClock(change.Timestamp))
	case entity.ChangeArrival:
		return fmt.Sprintf("Flight %s has arrived at %s.", flightNumber, formatClock(change.Timestamp))
	default:
		return fmt.Sprintf("Update for flight %s: %v.", flightNumber, change)
	}
}

// ComposeRuleMessage renders the message for a rule-triggered notification,
// prefixed with the rule name. A nil change means the rule fired without a
// change of the alert's type this cycle.
func ComposeRuleMessage(ruleName, flightNumber string, change *entity.Change) string {
	if change == nil {
		return fmt.Sprintf("%s: conditions met for flight %s.", ruleName, flightNumber)
	}
	return fmt.Sprintf("%s: %s", ruleName, ComposeChangeMessage(flightNumber, *change))
}

// ComposeTitle returns the notification title for a change type
func ComposeTitle(changeType entity.ChangeType) string {
	switch changeType {
	case entity.ChangeStatus:
		return "Flight Status Change"
	case entity.ChangeDelay:
		return "Flight Delay"
	case entity.ChangeGate:
		return "Gate Change"
	case entity.ChangeDeparture:
		return "Flight Departure"
	case entity.ChangeArrival:
		return "Flight Arrival"
	default:
		return "Flight Update"
	}
}

// ComposeRuleTitle returns the notification title for a satisfied rule
func ComposeRuleTitle(ruleName string) string {
	return fmt.Sprintf("Rule Triggered: %s", ruleName)
}

// ComposeEmail renders the subject and bodies for a notification email
func ComposeEmail(title, message string) (subject, htmlBody, textBody string) {
	subject = title
	htmlBody = fmt.Sprintf("<h2>%s</h2><p>%s</p>", title, message)
	textBody = message
	return subject, htmlBody, textBody
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "recently"
	}
	return t.UTC().Format("3:04:05 PM")
}
