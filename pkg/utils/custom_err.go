package utils

import "errors"

var (
	// ErrConfigurationMissing means no model credential is available.
	// It is fatal: nothing is ever sent upstream without one.
	ErrConfigurationMissing = errors.New("model credential missing")

	// ErrServiceUnavailable covers transport, auth and timeout failures
	// while talking to the generative model service.
	ErrServiceUnavailable = errors.New("model service unavailable")

	// ErrMalformedResponse means the model reply was not valid JSON.
	ErrMalformedResponse = errors.New("model reply is not valid JSON")

	// ErrSchemaViolation means the model reply parsed as JSON but failed
	// the recommendation schema (missing fields, wrong types, out-of-range values).
	ErrSchemaViolation = errors.New("model reply violates recommendation schema")

	ErrInvalidInput             = errors.New("invalid traveler preferences")
	ErrRequestInFlight          = errors.New("a recommendation request is already in flight")
	ErrRequestSuperseded        = errors.New("request superseded by a newer submission")
	ErrNoRecommendation         = errors.New("no recommendation available")
	ErrIncompleteRecommendation = errors.New("recommendation is missing required fields")
)
