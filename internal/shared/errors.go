package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrStoreLocked  = fmt.Errorf("data store is locked by another process")
	ErrKeyNotFound  = fmt.Errorf("key not found")
	ErrCorruptValue = fmt.Errorf("stored value could not be decoded")

	// Lookup errors
	ErrNotFound               = fmt.Errorf("not found")
	ErrShowNotFound           = fmt.Errorf("show %w", ErrNotFound)
	ErrSongNotFound           = fmt.Errorf("song %w", ErrNotFound)
	ErrRepertoireItemNotFound = fmt.Errorf("repertoire item %w", ErrNotFound)
	ErrAuditionNotFound       = fmt.Errorf("audition %w", ErrNotFound)
	ErrChecklistItemNotFound  = fmt.Errorf("checklist item %w", ErrNotFound)

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
