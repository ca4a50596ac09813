package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
)

// shortIDLen is how many id characters tables show.
const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// resolveID finds the single item whose key is ref or starts with ref.
func resolveID[T models.Model](items []T, ref string, notFound error) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	var matches []string
	for _, item := range items {
		key := item.Key()
		if key == ref {
			return key, nil
		}
		if strings.HasPrefix(key, ref) {
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", notFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: id prefix %q matches %d items", shared.ErrInvalidArgument, ref, len(matches))
	}
}
