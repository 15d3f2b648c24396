package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Village errors
	ErrMsgVillageNotFound   = "village not found"
	ErrMsgVersionConflict   = "village was modified concurrently"
	ErrMsgReconcileConflict = "village resources are being updated, try again"

	// Tribe errors
	ErrMsgTribeNotFound        = "tribe not found"
	ErrMsgTribeAlreadySelected = "tribe already selected"
	ErrMsgNoFreeCoordinates    = "no free coordinates available"
	ErrMsgCoordinatesTaken     = "coordinates already taken"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Village errors
	ErrVillageNotFound = errors.New(ErrMsgVillageNotFound)

	// ErrVersionConflict is returned by the store when a conditional write lost the race
	// against another writer of the same village.
	ErrVersionConflict = errors.New(ErrMsgVersionConflict)

	// ErrReconcileConflict is returned to callers once every reconciliation attempt lost
	// its version check.
	ErrReconcileConflict = errors.New(ErrMsgReconcileConflict)

	// Tribe errors
	ErrTribeNotFound        = errors.New(ErrMsgTribeNotFound)
	ErrTribeAlreadySelected = errors.New(ErrMsgTribeAlreadySelected)
	ErrNoFreeCoordinates    = errors.New(ErrMsgNoFreeCoordinates)
	ErrCoordinatesTaken     = errors.New(ErrMsgCoordinatesTaken)

	// System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
