package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/practice"
	"github.com/desertthunder/encore/internal/repositories"
	"github.com/desertthunder/encore/internal/shared"
	th "github.com/desertthunder/encore/internal/testing"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

// failingStore loads nothing and fails every save.
type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) { return nil, shared.ErrKeyNotFound }
func (failingStore) Save(context.Context, string, []byte) error  { return errors.New("disk full") }
func (failingStore) Close() error                                { return nil }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestTracker(t *testing.T, store repositories.KVStore) (*Tracker, *th.FixedClock) {
	t.Helper()
	clock := th.NewFixedClock(testNow)
	tracker, err := NewTracker(context.Background(), TrackerOpts{
		Store:  store,
		Clock:  clock,
		Jitter: finder.Zero,
		NewID:  sequentialIDs(),
	})
	if err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}
	return tracker, clock
}

func TestNewTracker(t *testing.T) {
	t.Run("requires a store", func(t *testing.T) {
		if _, err := NewTracker(context.Background(), TrackerOpts{}); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty store starts with defaults", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		if len(tracker.Repertoire()) != 0 || len(tracker.Sessions()) != 0 || len(tracker.Favorites()) != 0 {
			t.Errorf("expected empty collections")
		}
		if tracker.Settings() != models.DefaultSettings() {
			t.Errorf("expected default settings, got %+v", tracker.Settings())
		}
		if tracker.Catalog().Len() != 12 {
			t.Errorf("expected bundled catalog, got %d shows", tracker.Catalog().Len())
		}
	})

	t.Run("corrupt store fails to load", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		if err := store.Save(context.Background(), repositories.KeyPractice, []byte("{nope")); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
		_, err := NewTracker(context.Background(), TrackerOpts{Store: store})
		if !errors.Is(err, shared.ErrCorruptValue) {
			t.Errorf("expected ErrCorruptValue, got %v", err)
		}
	})
}

func TestRepertoire(t *testing.T) {
	ctx := context.Background()

	t.Run("add resolves song and show", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())

		item, err := tracker.AddToRepertoire(ctx, "ham-2")
		if err != nil {
			t.Fatalf("failed to add: %v", err)
		}
		if item.ShowID != "hamilton" || item.Status != models.StatusLearning || !item.AddedAt.Equal(testNow) {
			t.Errorf("unexpected item %+v", item)
		}
		if item.Tags == nil {
			t.Errorf("expected non-nil tags")
		}
		if !tracker.IsInRepertoire("ham-2") {
			t.Errorf("expected ham-2 to be in repertoire")
		}
	})

	t.Run("unknown song", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		if _, err := tracker.AddToRepertoire(ctx, "nope-1"); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
	})

	t.Run("duplicates create separate items", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		first, _ := tracker.AddToRepertoire(ctx, "wic-2")
		second, _ := tracker.AddToRepertoire(ctx, "wic-2")

		if first.ID == second.ID {
			t.Errorf("expected distinct ids, got %s twice", first.ID)
		}
		if n := len(tracker.Repertoire()); n != 2 {
			t.Errorf("expected 2 items, got %d", n)
		}
	})

	t.Run("status cycles back to learning", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		item, _ := tracker.AddToRepertoire(ctx, "ham-2")

		want := []models.RepertoireStatus{models.StatusPolishing, models.StatusPerformanceReady, models.StatusLearning}
		for _, status := range want {
			updated, err := tracker.CycleStatus(ctx, item.ID)
			if err != nil {
				t.Fatalf("cycle failed: %v", err)
			}
			if updated.Status != status {
				t.Errorf("expected %s, got %s", status, updated.Status)
			}
		}

		if _, err := tracker.CycleStatus(ctx, "missing"); !errors.Is(err, shared.ErrRepertoireItemNotFound) {
			t.Errorf("expected ErrRepertoireItemNotFound, got %v", err)
		}
	})

	t.Run("tags toggle", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		item, _ := tracker.AddToRepertoire(ctx, "ham-2")

		updated, err := tracker.ToggleTag(ctx, item.ID, models.TagBelt)
		if err != nil || !updated.HasTag(models.TagBelt) {
			t.Fatalf("expected belt tag, got %+v (%v)", updated.Tags, err)
		}
		updated, _ = tracker.ToggleTag(ctx, item.ID, models.TagBelt)
		if updated.HasTag(models.TagBelt) {
			t.Errorf("expected belt tag removed")
		}

		if _, err := tracker.ToggleTag(ctx, item.ID, "screlt"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("notes and removal", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		item, _ := tracker.AddToRepertoire(ctx, "ham-2")

		updated, err := tracker.UpdateNotes(ctx, item.ID, "Land the high note", "I am not throwing away my shot")
		if err != nil || updated.Notes != "Land the high note" || updated.Lyrics == "" {
			t.Errorf("unexpected notes update %+v (%v)", updated, err)
		}

		if err := tracker.RemoveFromRepertoire(ctx, item.ID); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if tracker.IsInRepertoire("ham-2") {
			t.Errorf("expected item removed")
		}
		if err := tracker.RemoveFromRepertoire(ctx, item.ID); !errors.Is(err, shared.ErrRepertoireItemNotFound) {
			t.Errorf("expected ErrRepertoireItemNotFound, got %v", err)
		}
	})

	t.Run("entries filter by status and resolve songs", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		a, _ := tracker.AddToRepertoire(ctx, "ham-2")
		tracker.AddToRepertoire(ctx, "wic-2")
		tracker.CycleStatus(ctx, a.ID)

		all := tracker.RepertoireEntries("")
		if len(all) != 2 || !all[0].Found || all[0].Song.Title != "My Shot" {
			t.Errorf("unexpected entries %+v", all)
		}
		polishing := tracker.RepertoireEntries(models.StatusPolishing)
		if len(polishing) != 1 || polishing[0].Item.ID != a.ID {
			t.Errorf("expected only the polishing item, got %+v", polishing)
		}
	})

	t.Run("state survives reload", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		tracker, _ := newTestTracker(t, store)
		tracker.AddToRepertoire(ctx, "ham-2")
		tracker.AddToRepertoire(ctx, "pha-2")

		reloaded, _ := newTestTracker(t, store)
		if n := len(reloaded.Repertoire()); n != 2 {
			t.Errorf("expected 2 items after reload, got %d", n)
		}
	})

	t.Run("failed save leaves state unchanged", func(t *testing.T) {
		tracker, _ := newTestTracker(t, failingStore{})
		if _, err := tracker.AddToRepertoire(ctx, "ham-2"); err == nil {
			t.Fatal("expected save error")
		}
		if len(tracker.Repertoire()) != 0 {
			t.Errorf("expected empty repertoire after failed save")
		}
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		tracker.AddToRepertoire(ctx, "ham-2")

		items := tracker.Repertoire()
		items[0].Notes = "mutated"
		if tracker.Repertoire()[0].Notes != "" {
			t.Errorf("mutating the returned slice changed tracker state")
		}
	})
}

func TestLogPractice(t *testing.T) {
	ctx := context.Background()

	tc := []struct {
		name    string
		elapsed time.Duration
		want    int
		wantErr error
	}{
		{name: "nine seconds is too short", elapsed: 9 * time.Second, wantErr: practice.ErrSessionTooShort},
		{name: "ten seconds rounds up to a minute", elapsed: 10 * time.Second, want: 1},
		{name: "two and a half minutes rounds to three", elapsed: 150 * time.Second, want: 3},
		{name: "twenty minutes", elapsed: 20 * time.Minute, want: 20},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
			item, _ := tracker.AddToRepertoire(ctx, "ham-2")

			session, err := tracker.LogPractice(ctx, item.ID, tt.elapsed, "scales first")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(tracker.Sessions()) != 0 {
					t.Errorf("expected no session to be logged")
				}
				if got, _ := tracker.RepertoireItem(item.ID); got.PracticeCount != 0 {
					t.Errorf("expected practice count unchanged, got %d", got.PracticeCount)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.DurationMinutes != tt.want {
				t.Errorf("expected %d minutes, got %d", tt.want, session.DurationMinutes)
			}
			if session.RepertoireItemID != item.ID || !session.Date.Equal(testNow) {
				t.Errorf("unexpected session %+v", session)
			}

			got, _ := tracker.RepertoireItem(item.ID)
			if got.PracticeCount != 1 {
				t.Errorf("expected practice count 1, got %d", got.PracticeCount)
			}
			if got.LastPracticed == nil || !got.LastPracticed.Equal(testNow) {
				t.Errorf("expected last practiced to be now, got %v", got.LastPracticed)
			}
		})
	}

	t.Run("unknown item", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		if _, err := tracker.LogPractice(ctx, "missing", time.Minute, ""); !errors.Is(err, shared.ErrRepertoireItemNotFound) {
			t.Errorf("expected ErrRepertoireItemNotFound, got %v", err)
		}
	})

	t.Run("custom minimum", func(t *testing.T) {
		tracker, err := NewTracker(ctx, TrackerOpts{
			Store:            repositories.NewMemoryStore(),
			Clock:            th.NewFixedClock(testNow),
			MinSessionLength: time.Minute,
		})
		if err != nil {
			t.Fatalf("failed to create tracker: %v", err)
		}
		item, _ := tracker.AddToRepertoire(ctx, "ham-2")
		if _, err := tracker.LogPractice(ctx, item.ID, 30*time.Second, ""); !errors.Is(err, practice.ErrSessionTooShort) {
			t.Errorf("expected ErrSessionTooShort under a one minute minimum, got %v", err)
		}
	})
}

func TestAuditions(t *testing.T) {
	ctx := context.Background()

	t.Run("show and role are required", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		for _, in := range []AuditionInput{{Role: "Elphaba"}, {ShowTitle: "Wicked", Role: "   "}} {
			if _, err := tracker.AddAudition(ctx, in); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for %+v, got %v", in, err)
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		a, err := tracker.AddAudition(ctx, AuditionInput{ShowTitle: " Wicked ", Role: "Elphaba", Location: "Gershwin"})
		if err != nil {
			t.Fatalf("failed to add audition: %v", err)
		}
		if a.ShowTitle != "Wicked" || a.Status != models.AuditionUpcoming || !a.Date.Equal(testNow) {
			t.Errorf("unexpected audition %+v", a)
		}
		if len(a.Checklist) != len(models.DefaultChecklistLabels) {
			t.Errorf("expected default checklist, got %d items", len(a.Checklist))
		}
		if a.Journal != nil {
			t.Errorf("expected no journal")
		}
	})

	t.Run("status toggles", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		a, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Rent", Role: "Mimi"})

		a, _ = tracker.ToggleAuditionStatus(ctx, a.ID)
		if a.Status != models.AuditionCompleted {
			t.Errorf("expected completed, got %s", a.Status)
		}
		a, _ = tracker.ToggleAuditionStatus(ctx, a.ID)
		if a.Status != models.AuditionUpcoming {
			t.Errorf("expected upcoming, got %s", a.Status)
		}
		a, _ = tracker.CancelAudition(ctx, a.ID)
		if a.Status != models.AuditionCancelled {
			t.Errorf("expected cancelled, got %s", a.Status)
		}
		a, _ = tracker.ToggleAuditionStatus(ctx, a.ID)
		if a.Status != models.AuditionCompleted {
			t.Errorf("expected cancelled to toggle to completed, got %s", a.Status)
		}

		if _, err := tracker.ToggleAuditionStatus(ctx, "missing"); !errors.Is(err, shared.ErrAuditionNotFound) {
			t.Errorf("expected ErrAuditionNotFound, got %v", err)
		}
	})

	t.Run("checklist by id or position", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		a, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Six", Role: "Anne Boleyn"})

		a, err := tracker.ToggleChecklistItem(ctx, a.ID, a.Checklist[1].ID)
		if err != nil || !a.Checklist[1].Completed {
			t.Fatalf("expected item 2 completed, got %+v (%v)", a.Checklist, err)
		}
		a, _ = tracker.ToggleChecklistItem(ctx, a.ID, "1")
		if !a.Checklist[0].Completed {
			t.Errorf("expected item 1 completed")
		}
		if done, total := a.ChecklistProgress(); done != 2 || total != len(models.DefaultChecklistLabels) {
			t.Errorf("expected 2/%d, got %d/%d", len(models.DefaultChecklistLabels), done, total)
		}

		a, _ = tracker.ToggleChecklistItem(ctx, a.ID, "1")
		if a.Checklist[0].Completed {
			t.Errorf("expected item 1 toggled back")
		}

		for _, ref := range []string{"0", "99", "nope"} {
			if _, err := tracker.ToggleChecklistItem(ctx, a.ID, ref); !errors.Is(err, shared.ErrChecklistItemNotFound) {
				t.Errorf("expected ErrChecklistItemNotFound for %q, got %v", ref, err)
			}
		}
	})

	t.Run("journal upsert keeps id", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		a, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Company", Role: "Bobby"})

		a, err := tracker.SaveJournal(ctx, a.ID, JournalInput{Notes: "nervous"})
		if err != nil {
			t.Fatalf("failed to save journal: %v", err)
		}
		first := a.Journal
		if first.HowItWent != models.WentGood || first.CallbackStatus != models.CallbackPending {
			t.Errorf("expected good/pending defaults, got %s/%s", first.HowItWent, first.CallbackStatus)
		}

		a, _ = tracker.SaveJournal(ctx, a.ID, JournalInput{HowItWent: models.WentGreat, CallbackStatus: models.CallbackBooked})
		if a.Journal.ID != first.ID {
			t.Errorf("expected journal id %s kept, got %s", first.ID, a.Journal.ID)
		}
		if !a.Booked() {
			t.Errorf("expected audition booked")
		}
	})

	t.Run("list sorted and filtered", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		late, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Late", Role: "R", Date: testNow.AddDate(0, 0, 10)})
		early, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Early", Role: "R", Date: testNow.AddDate(0, 0, 1)})
		tracker.ToggleAuditionStatus(ctx, late.ID)

		all := tracker.Auditions(FilterAll)
		if len(all) != 2 || all[0].ID != early.ID {
			t.Errorf("expected early audition first, got %+v", all)
		}
		upcoming := tracker.Auditions(AuditionFilter(models.AuditionUpcoming))
		if len(upcoming) != 1 || upcoming[0].ID != early.ID {
			t.Errorf("expected only the early audition upcoming, got %+v", upcoming)
		}

		if err := tracker.RemoveAudition(ctx, early.ID); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if _, err := tracker.Audition(early.ID); !errors.Is(err, shared.ErrAuditionNotFound) {
			t.Errorf("expected removed audition to be gone, got %v", err)
		}
	})
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTestTracker(t, repositories.NewMemoryStore())

	if _, err := tracker.ToggleFavorite(ctx, "cats"); !errors.Is(err, shared.ErrShowNotFound) {
		t.Errorf("expected ErrShowNotFound, got %v", err)
	}

	on, err := tracker.ToggleFavorite(ctx, "hamilton")
	if err != nil || !on || !tracker.IsFavorite("hamilton") {
		t.Fatalf("expected hamilton favourited, got %v (%v)", on, err)
	}
	tracker.ToggleFavorite(ctx, "six")

	off, _ := tracker.ToggleFavorite(ctx, "hamilton")
	if off || tracker.IsFavorite("hamilton") {
		t.Errorf("expected hamilton unfavourited")
	}
	if favs := tracker.Favorites(); len(favs) != 1 || favs[0] != "six" {
		t.Errorf("expected only six, got %v", favs)
	}
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out of range goals", func(t *testing.T) {
		tracker, _ := newTestTracker(t, repositories.NewMemoryStore())
		for _, goal := range []int{0, 51} {
			_, err := tracker.UpdateSettings(ctx, models.SettingsPatch{PracticeGoalPerWeek: &goal})
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for goal %d, got %v", goal, err)
			}
		}
		if tracker.Settings().PracticeGoalPerWeek != 5 {
			t.Errorf("expected goal unchanged, got %d", tracker.Settings().PracticeGoalPerWeek)
		}
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		tracker, _ := newTestTracker(t, store)

		goal := 7
		tracker.UpdateSettings(ctx, models.SettingsPatch{PracticeGoalPerWeek: &goal})
		vocal := "Tenor"
		got, err := tracker.UpdateSettings(ctx, models.SettingsPatch{VocalRange: &vocal})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if got.VocalRange != "Tenor" || got.PracticeGoalPerWeek != 7 || got.ReminderTime != "18:00" {
			t.Errorf("unexpected settings %+v", got)
		}

		reloaded, _ := newTestTracker(t, store)
		if reloaded.Settings() != got {
			t.Errorf("expected persisted settings %+v, got %+v", got, reloaded.Settings())
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	tracker, clock := newTestTracker(t, repositories.NewMemoryStore())

	a, _ := tracker.AddToRepertoire(ctx, "ham-2")
	tracker.AddToRepertoire(ctx, "wic-2")
	tracker.CycleStatus(ctx, a.ID)
	tracker.CycleStatus(ctx, a.ID)

	clock.Set(testNow.AddDate(0, 0, -1))
	tracker.LogPractice(ctx, a.ID, 30*time.Minute, "")
	clock.Set(testNow)
	tracker.LogPractice(ctx, a.ID, 45*time.Minute, "")

	tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Wicked", Role: "Elphaba", Date: testNow.AddDate(0, 0, 3)})
	done, _ := tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Rent", Role: "Maureen"})
	tracker.ToggleAuditionStatus(ctx, done.ID)
	tracker.SaveJournal(ctx, done.ID, JournalInput{CallbackStatus: models.CallbackBooked})
	tracker.ToggleFavorite(ctx, "wicked")

	got := tracker.Stats()
	want := models.ProfileStats{
		TotalSongs:        2,
		ReadyCount:        1,
		UpcomingAuditions: 1,
		BookedCount:       1,
		FavoriteCount:     1,
		TotalSessions:     2,
		TotalMinutes:      75,
		ThisWeek:          2,
		WeeklyGoal:        5,
		WeeklyRatio:       0.4,
		Streak:            2,
	}
	if got != want {
		t.Errorf("stats mismatch\ngot:  %+v\nwant: %+v", got, want)
	}

	if recent := tracker.RecentPractice(1); len(recent) != 1 || recent[0].DurationMinutes != 45 {
		t.Errorf("expected newest session first, got %+v", recent)
	}
}

func TestFindSongs(t *testing.T) {
	tracker, _ := newTestTracker(t, repositories.NewMemoryStore())

	matches := tracker.FindSongs(finder.Query{VocalRange: "Tenor", Style: finder.StyleBallad})
	if len(matches) == 0 {
		t.Fatal("expected matches for a tenor ballad")
	}
	for _, m := range matches {
		if m.Song.Type == models.SongEnsemble {
			t.Errorf("ensemble number %s should never be recommended", m.Song.ID)
		}
	}

	again := tracker.FindSongs(finder.Query{VocalRange: "Tenor", Style: finder.StyleBallad})
	if len(again) != len(matches) || again[0].Song.ID != matches[0].Song.ID {
		t.Errorf("expected zero jitter to give a stable order")
	}
}

func TestCalendarEvents(t *testing.T) {
	ctx := context.Background()
	tracker, clock := newTestTracker(t, repositories.NewMemoryStore())

	item, _ := tracker.AddToRepertoire(ctx, "ham-2")
	clock.Set(time.Date(2026, 5, 3, 18, 0, 0, 0, time.UTC))
	tracker.LogPractice(ctx, item.ID, 20*time.Minute, "breath support")
	clock.Set(time.Date(2026, 4, 30, 18, 0, 0, 0, time.UTC))
	tracker.LogPractice(ctx, item.ID, 15*time.Minute, "")
	clock.Set(testNow)

	tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Wicked", Role: "Elphaba", Location: "Gershwin", Date: time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)})
	tracker.AddAudition(ctx, AuditionInput{ShowTitle: "Rent", Role: "Mimi", Date: time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC)})

	cal := tracker.CalendarEvents(2026, time.May)
	if cal.AuditionCount != 2 || cal.PracticeCount != 1 {
		t.Errorf("expected 2 auditions and 1 session, got %d and %d", cal.AuditionCount, cal.PracticeCount)
	}
	if days := cal.EventDays(); len(days) != 2 || days[0] != 3 || days[1] != 14 {
		t.Errorf("expected event days [3 14], got %v", days)
	}

	day3 := cal.Days[3]
	if len(day3) != 2 {
		t.Fatalf("expected 2 events on May 3, got %+v", day3)
	}
	if day3[0].Kind != models.EventAudition || day3[0].Subtitle != "Mimi" {
		t.Errorf("unexpected audition event %+v", day3[0])
	}
	if day3[1].Kind != models.EventPractice || day3[1].Title != "My Shot" || day3[1].Subtitle != "20 min · breath support" {
		t.Errorf("unexpected practice event %+v", day3[1])
	}
	if ev := cal.Days[14][0]; ev.Subtitle != "Elphaba · Gershwin" {
		t.Errorf("unexpected subtitle %q", ev.Subtitle)
	}

	t.Run("removed items fall back to a generic title", func(t *testing.T) {
		tracker.RemoveFromRepertoire(ctx, item.ID)
		cal := tracker.CalendarEvents(2026, time.May)
		if title := cal.Days[3][1].Title; title != "Practice Session" {
			t.Errorf("expected fallback title, got %q", title)
		}
	})
}
