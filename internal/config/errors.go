package config

import "errors"

var (
	errInvalidGoal = errors.New(
		"the daily goal must be a positive duration",
	)

	errInvalidDuration = errors.New(
		"the session duration must be a positive duration",
	)

	errInvalidPeriod = errors.New(
		"please provide a valid time period",
	)

	errInvalidDateRange = errors.New(
		"the end date must not be earlier than the start date",
	)
)
