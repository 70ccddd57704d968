package my_errors

import "errors"

// Sentinel errors for the activity directory
var (
	// Activity errors
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("participant already signed up")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
