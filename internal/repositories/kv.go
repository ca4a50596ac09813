package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/encore/internal/shared"
	"github.com/goccy/go-json"
)

// Fixed storage keys, one per collection.
const (
	KeyRepertoire = "musical_theater_repertoire"
	KeyAuditions  = "musical_theater_auditions"
	KeyPractice   = "musical_theater_practice"
	KeyFavorites  = "musical_theater_favorites"
	KeySettings   = "musical_theater_settings"
)

// Keys lists every storage key.
var Keys = []string{KeyRepertoire, KeyAuditions, KeyPractice, KeyFavorites, KeySettings}

// KVStore loads and saves opaque blobs by key.
//
// Load returns [shared.ErrKeyNotFound] when nothing has been saved under key.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// loadJSON decodes the blob under key into dst. found is false when the key is absent.
func loadJSON(ctx context.Context, store KVStore, key string, dst any) (found bool, err error) {
	data, err := store.Load(ctx, key)
	if errors.Is(err, shared.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", shared.ErrCorruptValue, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store KVStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
