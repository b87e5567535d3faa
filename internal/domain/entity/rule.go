package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RuleOperator combines condition results within a rule
type RuleOperator string

const (
	RuleOperatorAnd RuleOperator = "AND"
	RuleOperatorOr  RuleOperator = "OR"
)

// ParseRuleOperator validates a raw rule operator at the data-entry boundary
func ParseRuleOperator(s string) (RuleOperator, error) {
	switch RuleOperator(s) {
	case RuleOperatorAnd, RuleOperatorOr:
		return RuleOperator(s), nil
	}
	return "", fmt.Errorf("unknown rule operator: %q", s)
}

// ConditionField names a flight attribute a condition can test
type ConditionField string

const (
	FieldFlightNumber    ConditionField = "flightNumber"
	FieldStatus          ConditionField = "status"
	FieldGate            ConditionField = "gate"
	FieldTerminal        ConditionField = "terminal"
	FieldDepartureTime   ConditionField = "departureTime"
	FieldArrivalTime     ConditionField = "arrivalTime"
	FieldActualDeparture ConditionField = "actualDeparture"
	FieldActualArrival   ConditionField = "actualArrival"
)

// ParseConditionField validates a raw field name at the data-entry boundary
func ParseConditionField(s string) (ConditionField, error) {
	switch ConditionField(s) {
	case FieldFlightNumber, FieldStatus, FieldGate, FieldTerminal,
		FieldDepartureTime, FieldArrivalTime, FieldActualDeparture, FieldActualArrival:
		return ConditionField(s), nil
	}
	return "", fmt.Errorf("unknown condition field: %q", s)
}

// ConditionOperator is the comparison applied by a single condition
type ConditionOperator string

const (
	OpEquals             ConditionOperator = "equals"
	OpNotEquals          ConditionOperator = "notEquals"
	OpContains           ConditionOperator = "contains"
	OpNotContains        ConditionOperator = "notContains"
	OpGreaterThan        ConditionOperator = "greaterThan"
	OpLessThan           ConditionOperator = "lessThan"
	OpGreaterThanOrEqual ConditionOperator = "greaterThanOrEqual"
	OpLessThanOrEqual    ConditionOperator = "lessThanOrEqual"
	OpBetween            ConditionOperator = "between"
	OpChanged            ConditionOperator = "changed"
)

// ParseConditionOperator validates a raw operator at the data-entry boundary
func ParseConditionOperator(s string) (ConditionOperator, error) {
	switch ConditionOperator(s) {
	case OpEquals, OpNotEquals, OpContains, OpNotContains,
		OpGreaterThan, OpLessThan, OpGreaterThanOrEqual, OpLessThanOrEqual,
		OpBetween, OpChanged:
		return ConditionOperator(s), nil
	}
	return "", fmt.Errorf("unknown condition operator: %q", s)
}

// Condition is a single comparison test against one flight field.
// For the between operator, Value holds a comma-joined min,max pair.
// For the changed operator, Value holds a ChangeType.
type Condition struct {
	ID       uuid.UUID
	RuleID   uuid.UUID
	FlightID uuid.UUID
	Field    ConditionField
	Operator ConditionOperator
	Value    string
}

// Rule is a named boolean combination of conditions gating a set of alerts
type Rule struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Operator    RuleOperator
	Active      bool
	Schedule    string
	Conditions  []Condition
	Alerts      []Alert
	User        *User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
