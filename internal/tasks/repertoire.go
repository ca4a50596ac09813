package tasks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/practice"
	"github.com/desertthunder/encore/internal/shared"
)

// RepertoireEntry is a repertoire item resolved against the catalog.
//
// Song and Show are zero when the item's song is no longer in the catalog.
type RepertoireEntry struct {
	Item  models.RepertoireItem
	Song  models.Song
	Show  models.Show
	Found bool
}

// Repertoire returns every item in the order it was added.
func (t *Tracker) Repertoire() []models.RepertoireItem {
	return slices.Clone(t.repertoire)
}

// RepertoireEntries returns items joined with their songs, optionally filtered by status.
func (t *Tracker) RepertoireEntries(status models.RepertoireStatus) []RepertoireEntry {
	entries := make([]RepertoireEntry, 0, len(t.repertoire))
	for _, item := range t.repertoire {
		if status != "" && item.Status != status {
			continue
		}
		entry := RepertoireEntry{Item: item}
		if ref, ok := t.catalog.SongByID(item.SongID); ok {
			entry.Song, entry.Show, entry.Found = ref.Song, ref.Show, true
		}
		entries = append(entries, entry)
	}
	return entries
}

// RepertoireItem looks an item up by id.
func (t *Tracker) RepertoireItem(id string) (models.RepertoireItem, error) {
	item, ok := models.Find(t.repertoire, id)
	if !ok {
		return models.RepertoireItem{}, fmt.Errorf("%w: %s", shared.ErrRepertoireItemNotFound, id)
	}
	return item, nil
}

// IsInRepertoire reports whether any item tracks songID.
func (t *Tracker) IsInRepertoire(songID string) bool {
	return slices.ContainsFunc(t.repertoire, func(r models.RepertoireItem) bool { return r.SongID == songID })
}

// AddToRepertoire starts tracking a catalog song. Adding a song twice creates two items.
func (t *Tracker) AddToRepertoire(ctx context.Context, songID string) (models.RepertoireItem, error) {
	ref, ok := t.catalog.SongByID(songID)
	if !ok {
		return models.RepertoireItem{}, fmt.Errorf("%w: %s", shared.ErrSongNotFound, songID)
	}

	item := models.RepertoireItem{
		ID:      t.newID(),
		SongID:  ref.Song.ID,
		ShowID:  ref.Show.ID,
		AddedAt: t.clock.Now(),
		Status:  models.StatusLearning,
		Tags:    []models.SongTag{},
	}

	if err := t.saveRepertoire(ctx, models.Append(t.repertoire, item)); err != nil {
		return models.RepertoireItem{}, fmt.Errorf("failed to add %s: %w", songID, err)
	}

	t.logger.Info("added to repertoire", "song", ref.Song.Title, "show", ref.Show.Title, "id", item.ID)
	return item, nil
}

// RemoveFromRepertoire deletes an item. Its practice sessions are kept.
func (t *Tracker) RemoveFromRepertoire(ctx context.Context, id string) error {
	updated, ok := models.Remove(t.repertoire, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrRepertoireItemNotFound, id)
	}
	return t.saveRepertoire(ctx, updated)
}

// updateItem applies fn to the item keyed id and persists the result.
func (t *Tracker) updateItem(ctx context.Context, id string, fn func(models.RepertoireItem) models.RepertoireItem) (models.RepertoireItem, error) {
	var result models.RepertoireItem
	updated, ok := models.Replace(t.repertoire, id, func(item models.RepertoireItem) models.RepertoireItem {
		result = fn(item)
		return result
	})
	if !ok {
		return models.RepertoireItem{}, fmt.Errorf("%w: %s", shared.ErrRepertoireItemNotFound, id)
	}
	if err := t.saveRepertoire(ctx, updated); err != nil {
		return models.RepertoireItem{}, err
	}
	return result, nil
}

// UpdateNotes replaces an item's notes and lyrics.
func (t *Tracker) UpdateNotes(ctx context.Context, id, notes, lyrics string) (models.RepertoireItem, error) {
	return t.updateItem(ctx, id, func(item models.RepertoireItem) models.RepertoireItem {
		item.Notes = notes
		item.Lyrics = lyrics
		return item
	})
}

// CycleStatus advances learning → polishing → performance-ready → learning.
func (t *Tracker) CycleStatus(ctx context.Context, id string) (models.RepertoireItem, error) {
	return t.updateItem(ctx, id, func(item models.RepertoireItem) models.RepertoireItem {
		item.Status = item.Status.Next()
		return item
	})
}

// ToggleTag adds tag to the item or removes it when already set.
func (t *Tracker) ToggleTag(ctx context.Context, id string, tag models.SongTag) (models.RepertoireItem, error) {
	if !tag.Valid() {
		return models.RepertoireItem{}, fmt.Errorf("%w: unknown tag %q", shared.ErrInvalidInput, tag)
	}
	return t.updateItem(ctx, id, func(item models.RepertoireItem) models.RepertoireItem {
		return item.WithTagToggled(tag)
	})
}

// Sessions returns the practice log in the order it was recorded.
func (t *Tracker) Sessions() []models.PracticeSession {
	return slices.Clone(t.sessions)
}

// LogPractice records a stopped timer run against a repertoire item.
//
// Runs shorter than the configured minimum fail with [practice.ErrSessionTooShort]
// and change nothing. The item's practice count and last-practiced time are updated.
func (t *Tracker) LogPractice(ctx context.Context, itemID string, elapsed time.Duration, notes string) (models.PracticeSession, error) {
	item, err := t.RepertoireItem(itemID)
	if err != nil {
		return models.PracticeSession{}, err
	}

	minutes, err := practice.SessionMinutesWithMin(elapsed, t.minSession)
	if err != nil {
		return models.PracticeSession{}, err
	}

	now := t.clock.Now()
	session := models.PracticeSession{
		ID:               t.newID(),
		RepertoireItemID: item.ID,
		Date:             now,
		DurationMinutes:  minutes,
		Notes:            notes,
	}

	if err := t.saveSessions(ctx, models.Append(t.sessions, session)); err != nil {
		return models.PracticeSession{}, fmt.Errorf("failed to log practice: %w", err)
	}

	if _, err := t.updateItem(ctx, item.ID, func(item models.RepertoireItem) models.RepertoireItem {
		item.PracticeCount++
		item.LastPracticed = &now
		return item
	}); err != nil {
		return session, fmt.Errorf("session logged but item not updated: %w", err)
	}

	t.logger.Info("practice logged", "item", item.ID, "minutes", minutes)
	return session, nil
}
