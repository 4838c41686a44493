package pricing

import "errors"

var (
	// ErrPlanNotFound indicates the referenced rate plan does not exist.
	ErrPlanNotFound = errors.New("rate plan not found")
	// ErrInvalidRule indicates a rule with an unknown type or a rule that
	// references a missing plan.
	ErrInvalidRule = errors.New("invalid pricing rule")
)
