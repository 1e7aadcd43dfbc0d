// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to create a user with a
	// username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not match. Both cases share one error so login responses
	// cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
