package domain

import "errors"

var (
	// ErrInvalidInput is returned when a generation request is unusable
	// (empty recipe set, blank user id, nil result)
	ErrInvalidInput = errors.New("invalid shopping list input")

	// ErrUnknownIngredient is returned when an ingredient matches no
	// category rule; callers recover with the catch-all category
	ErrUnknownIngredient = errors.New("ingredient not in category rules")

	// ErrCacheMiss is returned when a generated list is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrExportFailure is returned when persisting an exported list fails
	ErrExportFailure = errors.New("shopping list export failed")

	// ErrListNotFound is returned when an exported list id does not exist
	ErrListNotFound = errors.New("exported shopping list not found")
)
