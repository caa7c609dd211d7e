package common

import "github.com/pkg/errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// quantile based operations need at least one curve
	ErrorEmptyData = errors.New("empty data, no curve added")

	ErrorLengthMismatch   = errors.New("curve length mismatch")
	ErrorInvalidQuantile  = errors.New("quantile out of range [0, 1]")
	ErrorInvalidStyle     = errors.New("invalid style option")
	ErrorUnknownEstimator = errors.New("unknown quantile estimator")
)
