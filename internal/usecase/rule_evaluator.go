package usecase

import (
	"flightwatch-service/internal/domain/entity"

	"github.com/google/uuid"
)

// RuleResult is the outcome of evaluating one rule. MatchedConditionIDs
// lists every individually-true condition regardless of whether the
// combination was satisfied, for partial-match diagnostics under AND.
type RuleResult struct {
	Satisfied           bool
	MatchedConditionIDs []uuid.UUID
}

// EvaluateRule evaluates a rule's conditions against the per-flight
// contexts and combines them with the rule's operator. A rule with no
// conditions never fires. A condition whose target flight is absent
// from flightData evaluates to false.
func EvaluateRule(rule entity.Rule, flightData map[uuid.UUID]entity.FlightContext) RuleResult {
	var result RuleResult
	if len(rule.Conditions) == 0 {
		return result
	}

	allTrue := true
	anyTrue := false

	for _, cond := range rule.Conditions {
		matched := false
		if fc, ok := flightData[cond.FlightID]; ok {
			matched = EvaluateCondition(cond, fc)
		}
		if matched {
			anyTrue = true
			result.MatchedConditionIDs = append(result.MatchedConditionIDs, cond.ID)
		} else {
			allTrue = false
		}
	}

	if rule.Operator == entity.RuleOperatorAnd {
		result.Satisfied = allTrue
	} else {
		result.Satisfied = anyTrue
	}

	return result
}
