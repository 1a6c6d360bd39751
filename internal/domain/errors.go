package domain

import "errors"

var (
	// ErrNotFound is returned when a dictionary or word does not exist
	ErrNotFound = errors.New("not found")

	// ErrDictionaryLimit is returned when a user already owns the maximum
	// number of dictionaries
	ErrDictionaryLimit = errors.New("dictionary limit reached")

	// ErrInvalidInput is returned for empty or malformed word input
	ErrInvalidInput = errors.New("invalid input")
)

// MaxDictionaries is the maximum number of dictionaries per user
const MaxDictionaries = 10
