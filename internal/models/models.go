package models

// Model defines the base interface for tracked entities.
type Model interface {
	Key() string     // Key returns the unique identifier for this model
	Validate() error // Validate checks if the model's data is valid and returns an error if not
}

// Find returns the first item whose Key equals id.
func Find[T Model](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Replace returns a copy of items with the item keyed id replaced by fn(item).
//
// The input slice is never modified. ok is false when no item matched.
func Replace[T Model](items []T, id string, fn func(T) T) (updated []T, ok bool) {
	updated = make([]T, len(items))
	for i, item := range items {
		if item.Key() == id {
			item = fn(item)
			ok = true
		}
		updated[i] = item
	}
	return updated, ok
}

// Remove returns a copy of items without the item keyed id.
func Remove[T Model](items []T, id string) (updated []T, ok bool) {
	updated = make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() == id {
			ok = true
			continue
		}
		updated = append(updated, item)
	}
	return updated, ok
}

// Append returns a copy of items with item added at the end.
func Append[T any](items []T, item T) []T {
	updated := make([]T, len(items), len(items)+1)
	copy(updated, items)
	return append(updated, item)
}
