package domain

import "errors"

var (
	// ErrInvalidFormat is returned when a version string is not a sequence of
	// dot-separated integers with an optional recognized suffix.
	ErrInvalidFormat = errors.New("invalid version format")

	// ErrMissingLogger is returned at construction when auto-notify is
	// requested without a logger.
	ErrMissingLogger = errors.New("no logger provided with autoNotify set to true")

	// ErrRepositoryNotFound is returned when the public endpoint answers 404,
	// which also happens for private repositories.
	ErrRepositoryNotFound = errors.New("repository not found (it may be private, try the token mode)")

	// ErrAccessDenied is returned when the API endpoint answers with a
	// non-200 status or an empty body, typically a missing repository or a
	// token without read permission on releases.
	ErrAccessDenied = errors.New("could not read releases (repository missing or token lacks permission)")

	// ErrMissingTagData is returned when a response parses but carries no
	// release tag (no Location header, or JSON without tag_name).
	ErrMissingTagData = errors.New("no release tag found in response")

	// ErrNoPriorCheck is returned by Notify before any check has resolved.
	ErrNoPriorCheck = errors.New("no version to compare to, run a check first")

	// ErrNoLogger is returned by Notify when no logger was supplied.
	ErrNoLogger = errors.New("no logger provided")
)
