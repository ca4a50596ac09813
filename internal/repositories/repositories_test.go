package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
)

// setupTestStore creates an in-memory SQLite store with migrations applied
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLiteStore(":memory:", 1, 1)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func setupBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadgerStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("failed to open badger store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func backends(t *testing.T) map[string]KVStore {
	return map[string]KVStore{
		"sqlite": setupTestStore(t),
		"badger": setupBadgerStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("LoadMissing", func(t *testing.T) {
				_, err := store.Load(ctx, "absent")
				if !errors.Is(err, shared.ErrKeyNotFound) {
					t.Errorf("expected ErrKeyNotFound, got %v", err)
				}
			})

			t.Run("SaveAndLoad", func(t *testing.T) {
				if err := store.Save(ctx, "k", []byte(`["a"]`)); err != nil {
					t.Fatalf("failed to save: %v", err)
				}
				got, err := store.Load(ctx, "k")
				if err != nil {
					t.Fatalf("failed to load: %v", err)
				}
				if string(got) != `["a"]` {
					t.Errorf("expected [\"a\"], got %s", got)
				}
			})

			t.Run("SaveReplaces", func(t *testing.T) {
				if err := store.Save(ctx, "k", []byte(`["b"]`)); err != nil {
					t.Fatalf("failed to save: %v", err)
				}
				got, _ := store.Load(ctx, "k")
				if string(got) != `["b"]` {
					t.Errorf("expected replacement value, got %s", got)
				}
			})
		})
	}
}

func TestRepertoireRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyWhenAbsent", func(t *testing.T) {
		repo := NewRepertoireRepository(NewMemoryStore())
		items, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		repo := NewRepertoireRepository(setupTestStore(t))
		practiced := time.Date(2024, 4, 2, 18, 0, 0, 0, time.UTC)
		item := models.RepertoireItem{
			ID: "r-1", SongID: "wic-4", ShowID: "wicked",
			AddedAt:       time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
			Notes:         "Riff on the last chorus",
			PracticeCount: 2,
			LastPracticed: &practiced,
			Status:        models.StatusPolishing,
			Tags:          []models.SongTag{models.TagBelt},
		}

		if err := repo.Save(ctx, []models.RepertoireItem{item}); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		items, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		got := items[0]
		if got.SongID != "wic-4" || got.Status != models.StatusPolishing || got.PracticeCount != 2 {
			t.Errorf("unexpected item: %+v", got)
		}
		if got.LastPracticed == nil || !got.LastPracticed.Equal(practiced) {
			t.Errorf("expected last practiced %v, got %v", practiced, got.LastPracticed)
		}
		if !got.HasTag(models.TagBelt) {
			t.Errorf("expected belt tag, got %v", got.Tags)
		}
	})

	t.Run("BackfillsLegacyItems", func(t *testing.T) {
		store := NewMemoryStore()
		legacy := `[{"id":"r-1","songId":"ham-2","showId":"hamilton","addedAt":"2024-01-01T00:00:00Z","practiceCount":0}]`
		if err := store.Save(ctx, KeyRepertoire, []byte(legacy)); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		items, err := NewRepertoireRepository(store).Load(ctx)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if items[0].Tags == nil {
			t.Error("expected tags to be back-filled")
		}
		if items[0].Status != models.StatusLearning {
			t.Errorf("expected learning status, got %q", items[0].Status)
		}
	})

	t.Run("ValidationError", func(t *testing.T) {
		repo := NewRepertoireRepository(NewMemoryStore())
		bad := models.RepertoireItem{ID: "r-1", SongID: "ham-2", ShowID: "hamilton", Status: "memorised"}

		if err := repo.Save(ctx, []models.RepertoireItem{bad}); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("CorruptValue", func(t *testing.T) {
		store := NewMemoryStore()
		store.Save(ctx, KeyRepertoire, []byte("{not json"))

		_, err := NewRepertoireRepository(store).Load(ctx)
		if !errors.Is(err, shared.ErrCorruptValue) {
			t.Errorf("expected ErrCorruptValue, got %v", err)
		}
	})
}

func TestAuditionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditionRepository(setupBadgerStore(t))

	audition := models.Audition{
		ID: "a-1", ShowTitle: "Six", Role: "Anne Boleyn",
		Date:      time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
		Checklist: []models.ChecklistItem{{ID: "c-1", Label: "Plan outfit", Completed: true}},
		Status:    models.AuditionCompleted,
		Journal: &models.JournalEntry{
			ID: "j-1", AuditionID: "a-1", HowItWent: models.WentGood, CallbackStatus: models.CallbackBooked,
		},
	}

	if err := repo.Save(ctx, []models.Audition{audition}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(got) != 1 || !got[0].Booked() || !got[0].Checklist[0].Completed {
		t.Errorf("unexpected auditions: %+v", got)
	}
}

func TestPracticeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPracticeRepository(NewMemoryStore())

	sessions := []models.PracticeSession{
		{ID: "p-1", RepertoireItemID: "r-1", Date: time.Now(), DurationMinutes: 15},
		{ID: "p-2", RepertoireItemID: "r-1", Date: time.Now(), DurationMinutes: 5, Notes: "breath support"},
	}
	if err := repo.Save(ctx, sessions); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(got) != 2 || got[1].Notes != "breath support" {
		t.Errorf("unexpected sessions: %+v", got)
	}
}

func TestFavoritesRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoritesRepository(setupTestStore(t))

	ids, err := repo.Load(ctx)
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected empty favourites, got %v, %v", ids, err)
	}

	if err := repo.Save(ctx, []string{"rent", "six"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	ids, _ = repo.Load(ctx)
	if len(ids) != 2 || ids[0] != "rent" {
		t.Errorf("unexpected favourites: %v", ids)
	}
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsWhenAbsent", func(t *testing.T) {
		got, err := NewSettingsRepository(NewMemoryStore()).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != models.DefaultSettings() {
			t.Errorf("expected defaults, got %+v", got)
		}
	})

	t.Run("MergesOverDefaults", func(t *testing.T) {
		store := NewMemoryStore()
		store.Save(ctx, KeySettings, []byte(`{"vocalRange":"Tenor"}`))

		got, err := NewSettingsRepository(store).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VocalRange != "Tenor" || got.PracticeGoalPerWeek != 5 || got.ReminderTime != "18:00" {
			t.Errorf("unexpected settings: %+v", got)
		}
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		s := models.DefaultSettings()
		s.PracticeGoalPerWeek = 0
		if err := NewSettingsRepository(NewMemoryStore()).Save(ctx, s); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, err := NewStore(shared.DatabaseConfig{Driver: shared.DriverMemory}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*MemoryStore); !ok {
			t.Errorf("expected *MemoryStore, got %T", store)
		}
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := NewStore(shared.DatabaseConfig{Driver: "postgres"}, nil)
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	for _, driver := range []string{shared.DriverSQLite, shared.DriverBadger} {
		t.Run(driver+"SurvivesReopen", func(t *testing.T) {
			cfg := shared.DatabaseConfig{Driver: driver, Path: filepath.Join(t.TempDir(), "encore"), MaxOpenConns: 1, MaxIdleConns: 1}

			store, err := NewStore(cfg, nil)
			if err != nil {
				t.Fatalf("failed to open store: %v", err)
			}
			if err := NewFavoritesRepository(store).Save(ctx, []string{"hadestown"}); err != nil {
				t.Fatalf("failed to save: %v", err)
			}

			if _, err := NewStore(cfg, nil); !errors.Is(err, shared.ErrStoreLocked) {
				t.Errorf("expected ErrStoreLocked while open, got %v", err)
			}

			if err := store.Close(); err != nil {
				t.Fatalf("failed to close: %v", err)
			}

			reopened, err := NewStore(cfg, nil)
			if err != nil {
				t.Fatalf("failed to reopen: %v", err)
			}
			defer reopened.Close()

			ids, err := NewFavoritesRepository(reopened).Load(ctx)
			if err != nil || len(ids) != 1 || ids[0] != "hadestown" {
				t.Errorf("expected hadestown after reopen, got %v, %v", ids, err)
			}
		})
	}
}
