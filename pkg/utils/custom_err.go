package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrTripNotFound           = errors.New("trip not found")
	ErrDayNotFound            = errors.New("day not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrCandidateNotFound      = errors.New("optimization candidate not found")
	ErrAlreadyFeasible        = errors.New("trip is already feasible")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEstimatorDisabled      = errors.New("trip estimator is disabled")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected response from AI provider")
)
