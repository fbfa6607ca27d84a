package repository

import "errors"

var (
	// ErrPlayerNotFound is returned by a PlayerLookup with no match.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrMissingColumns is returned by a PitchSource whose payload lacks release data.
	ErrMissingColumns = errors.New("pitch data missing release columns")
)
