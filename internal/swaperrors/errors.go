package swaperrors

import "errors"

// Store-level errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
	ErrSwapNotFound = errors.New("swap not found")

	// ErrStoreConflict signals a conditional update whose expectation no
	// longer held at write time. Callers may retry from fresh reads.
	ErrStoreConflict = errors.New("conflicting concurrent write")
)

// Settlement errors
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidState       = errors.New("entity not in required state")
	ErrUnauthorized       = errors.New("actor is not the required party")
	ErrInsufficientPoints = errors.New("insufficient points balance")
	ErrAlreadyDecided     = errors.New("swap already decided")
)

// Account errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
