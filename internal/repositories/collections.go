package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/encore/internal/models"
)

// Collection persists a slice of models under a single key.
type Collection[T models.Model] struct {
	store KVStore
	key   string
}

// NewCollection binds a collection to key in store.
func NewCollection[T models.Model](store KVStore, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the storage key.
func (c *Collection[T]) Key() string { return c.key }

// Load returns every stored item, or an empty slice when nothing was saved yet.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := loadJSON(ctx, c.store, c.key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save validates every item and replaces the stored collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validation failed for %s: %w", item.Key(), err)
		}
	}
	if items == nil {
		items = []T{}
	}
	return saveJSON(ctx, c.store, c.key, items)
}

// RepertoireRepository persists repertoire items.
type RepertoireRepository struct {
	*Collection[models.RepertoireItem]
}

func NewRepertoireRepository(store KVStore) *RepertoireRepository {
	return &RepertoireRepository{NewCollection[models.RepertoireItem](store, KeyRepertoire)}
}

// Load returns the repertoire, back-filling tags and status on items saved before they existed.
func (r *RepertoireRepository) Load(ctx context.Context) ([]models.RepertoireItem, error) {
	items, err := r.Collection.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Tags == nil {
			items[i].Tags = []models.SongTag{}
		}
		if items[i].Status == "" {
			items[i].Status = models.StatusLearning
		}
	}
	return items, nil
}

// AuditionRepository persists auditions.
type AuditionRepository struct {
	*Collection[models.Audition]
}

func NewAuditionRepository(store KVStore) *AuditionRepository {
	return &AuditionRepository{NewCollection[models.Audition](store, KeyAuditions)}
}

// PracticeRepository persists the practice log.
type PracticeRepository struct {
	*Collection[models.PracticeSession]
}

func NewPracticeRepository(store KVStore) *PracticeRepository {
	return &PracticeRepository{NewCollection[models.PracticeSession](store, KeyPractice)}
}

// FavoritesRepository persists favourite show ids.
type FavoritesRepository struct {
	store KVStore
}

func NewFavoritesRepository(store KVStore) *FavoritesRepository {
	return &FavoritesRepository{store: store}
}

// Load returns the favourite show ids in the order they were added.
func (r *FavoritesRepository) Load(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := loadJSON(ctx, r.store, KeyFavorites, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return saveJSON(ctx, r.store, KeyFavorites, ids)
}

// SettingsRepository persists the settings singleton.
type SettingsRepository struct {
	store KVStore
}

func NewSettingsRepository(store KVStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Load returns the stored settings merged over [models.DefaultSettings].
func (r *SettingsRepository) Load(ctx context.Context) (models.UserSettings, error) {
	settings := models.DefaultSettings()
	if _, err := loadJSON(ctx, r.store, KeySettings, &settings); err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings models.UserSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return saveJSON(ctx, r.store, KeySettings, settings)
}

// Repositories groups every typed repository over one store.
type Repositories struct {
	Repertoire *RepertoireRepository
	Auditions  *AuditionRepository
	Practice   *PracticeRepository
	Favorites  *FavoritesRepository
	Settings   *SettingsRepository
}

// New builds all repositories on store.
func New(store KVStore) *Repositories {
	return &Repositories{
		Repertoire: NewRepertoireRepository(store),
		Auditions:  NewAuditionRepository(store),
		Practice:   NewPracticeRepository(store),
		Favorites:  NewFavoritesRepository(store),
		Settings:   NewSettingsRepository(store),
	}
}
