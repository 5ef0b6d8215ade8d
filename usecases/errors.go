package usecases

import "errors"

var (
	// ErrInvalidCredentials is returned for any login failure. Callers
	// never learn whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registration finds an existing user.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotFound covers both a missing note and a note owned by someone
	// else, so unauthorized callers cannot probe for existence.
	ErrNotFound = errors.New("note not found")

	// ErrContentRequired is returned when a note is submitted without content.
	ErrContentRequired = errors.New("content is required")
)
