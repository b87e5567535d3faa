package usecase

import (
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
)

// fieldAccessors maps condition fields to typed accessors over the flight
// context. The second return value is false when the field has no value,
// which fails the condition closed.
var fieldAccessors = map[entity.ConditionField]func(entity.FlightContext) (string, bool){
	entity.FieldFlightNumber: func(fc entity.FlightContext) (string, bool) {
		return fc.Flight.FlightNumber, fc.Flight.FlightNumber != ""
	},
	entity.FieldStatus: func(fc entity.FlightContext) (string, bool) {
		return fc.Flight.Status, fc.Flight.Status != ""
	},
	entity.FieldGate: func(fc entity.FlightContext) (string, bool) {
		return fc.Flight.Gate, fc.Flight.Gate != ""
	},
	entity.FieldTerminal: func(fc entity.FlightContext) (string, bool) {
		return fc.Flight.Terminal, fc.Flight.Terminal != ""
	},
	entity.FieldDepartureTime: func(fc entity.FlightContext) (string, bool) {
		return timeValue(fc.Flight.ScheduledDeparture)
	},
	entity.FieldArrivalTime: func(fc entity.FlightContext) (string, bool) {
		return timeValue(fc.Flight.ScheduledArrival)
	},
	entity.FieldActualDeparture: func(fc entity.FlightContext) (string, bool) {
		return timeValue(fc.Flight.ActualDeparture)
	},
	entity.FieldActualArrival: func(fc entity.FlightContext) (string, bool) {
		return timeValue(fc.Flight.ActualArrival)
	},
}

func timeValue(t *time.Time) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

// EvaluateCondition evaluates a single condition against a flight context.
// Missing fields, unparseable dates for relational operators and unknown
// operators all evaluate to false.
func EvaluateCondition(cond entity.Condition, fc entity.FlightContext) bool {
	if fc.Flight == nil {
		return false
	}

	accessor, ok := fieldAccessors[cond.Field]
	if !ok {
		return false
	}
	value, ok := accessor(fc)
	if !ok {
		return false
	}

	switch cond.Operator {
	case entity.OpEquals:
		return value == cond.Value
	case entity.OpNotEquals:
		return value != cond.Value
	case entity.OpContains:
		return strings.Contains(value, cond.Value)
	case entity.OpNotContains:
		return !strings.Contains(value, cond.Value)
	case entity.OpGreaterThan:
		return compareTimes(value, cond.Value, func(a, b time.Time) bool { return a.After(b) })
	case entity.OpLessThan:
		return compareTimes(value, cond.Value, func(a, b time.Time) bool { return a.Before(b) })
	case entity.OpGreaterThanOrEqual:
		return compareTimes(value, cond.Value, func(a, b time.Time) bool { return !a.Before(b) })
	case entity.OpLessThanOrEqual:
		return compareTimes(value, cond.Value, func(a, b time.Time) bool { return !a.After(b) })
	case entity.OpBetween:
		return evaluateBetween(value, cond.Value)
	case entity.OpChanged:
		for _, change := range fc.Changes {
			if string(change.Type) == cond.Value {
				return true
			}
		}
		return false
	}

	return false
}

// parseTime accepts the timestamp layouts rules are written with.
// Anything else is not a date and the comparison degrades to false.
func parseTime(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func compareTimes(fieldValue, condValue string, cmp func(a, b time.Time) bool) bool {
	a, ok := parseTime(fieldValue)
	if !ok {
		return false
	}
	b, ok := parseTime(condValue)
	if !ok {
		return false
	}
	return cmp(a, b)
}

func evaluateBetween(fieldValue, condValue string) bool {
	bounds := strings.SplitN(condValue, ",", 2)
	if len(bounds) != 2 {
		return false
	}
	t, ok := parseTime(fieldValue)
	if !ok {
		return false
	}
	min, ok := parseTime(bounds[0])
	if !ok {
		return false
	}
	max, ok := parseTime(bounds[1])
	if !ok {
		return false
	}
	return !t.Before(min) && !t.After(max)
}
