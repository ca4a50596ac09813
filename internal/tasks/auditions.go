package tasks

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/repositories"
	"github.com/desertthunder/encore/internal/shared"
)

// AuditionInput holds the fields a user fills in for a new audition.
//
// A zero Date means now.
type AuditionInput struct {
	ShowTitle string
	Role      string
	Date      time.Time
	Location  string
	Notes     string
}

// JournalInput holds a post-audition reflection. Empty enums default to good and pending.
type JournalInput struct {
	HowItWent      models.HowItWent
	CallbackStatus models.CallbackStatus
	Notes          string
	Improvements   string
}

// AuditionFilter selects auditions by status. "" and "all" select everything.
type AuditionFilter string

const FilterAll AuditionFilter = "all"

// Auditions returns the auditions matching filter, soonest first.
func (t *Tracker) Auditions(filter AuditionFilter) []models.Audition {
	out := make([]models.Audition, 0, len(t.auditions))
	for _, a := range t.auditions {
		if filter != "" && filter != FilterAll && string(a.Status) != string(filter) {
			continue
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b models.Audition) int { return a.Date.Compare(b.Date) })
	return out
}

// Audition looks an audition up by id.
func (t *Tracker) Audition(id string) (models.Audition, error) {
	a, ok := models.Find(t.auditions, id)
	if !ok {
		return models.Audition{}, fmt.Errorf("%w: %s", shared.ErrAuditionNotFound, id)
	}
	return a, nil
}

// AddAudition creates an upcoming audition with the default checklist.
func (t *Tracker) AddAudition(ctx context.Context, in AuditionInput) (models.Audition, error) {
	show, role := strings.TrimSpace(in.ShowTitle), strings.TrimSpace(in.Role)
	if show == "" || role == "" {
		return models.Audition{}, fmt.Errorf("%w: show and role are required", shared.ErrInvalidInput)
	}

	date := in.Date
	if date.IsZero() {
		date = t.clock.Now()
	}

	audition := models.Audition{
		ID:        t.newID(),
		ShowTitle: show,
		Role:      role,
		Date:      date,
		Location:  strings.TrimSpace(in.Location),
		Notes:     strings.TrimSpace(in.Notes),
		Checklist: models.NewChecklist(t.newID),
		Status:    models.AuditionUpcoming,
	}

	if err := t.saveAuditions(ctx, models.Append(t.auditions, audition)); err != nil {
		return models.Audition{}, fmt.Errorf("failed to add audition: %w", err)
	}

	t.logger.Info("audition added", "show", show, "role", role, "date", date.Format(time.DateOnly))
	return audition, nil
}

func (t *Tracker) updateAudition(ctx context.Context, id string, fn func(models.Audition) (models.Audition, error)) (models.Audition, error) {
	var (
		result models.Audition
		fnErr  error
	)
	updated, ok := models.Replace(t.auditions, id, func(a models.Audition) models.Audition {
		result, fnErr = fn(a)
		return result
	})
	if !ok {
		return models.Audition{}, fmt.Errorf("%w: %s", shared.ErrAuditionNotFound, id)
	}
	if fnErr != nil {
		return models.Audition{}, fnErr
	}
	if err := t.saveAuditions(ctx, updated); err != nil {
		return models.Audition{}, err
	}
	return result, nil
}

// ToggleAuditionStatus flips completed and upcoming. A cancelled audition becomes completed.
func (t *Tracker) ToggleAuditionStatus(ctx context.Context, id string) (models.Audition, error) {
	return t.updateAudition(ctx, id, func(a models.Audition) (models.Audition, error) {
		if a.Status == models.AuditionCompleted {
			a.Status = models.AuditionUpcoming
		} else {
			a.Status = models.AuditionCompleted
		}
		return a, nil
	})
}

// CancelAudition marks an audition cancelled.
func (t *Tracker) CancelAudition(ctx context.Context, id string) (models.Audition, error) {
	return t.updateAudition(ctx, id, func(a models.Audition) (models.Audition, error) {
		a.Status = models.AuditionCancelled
		return a, nil
	})
}

// RemoveAudition deletes an audition and its journal.
func (t *Tracker) RemoveAudition(ctx context.Context, id string) error {
	updated, ok := models.Remove(t.auditions, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrAuditionNotFound, id)
	}
	return t.saveAuditions(ctx, updated)
}

// ToggleChecklistItem flips one checklist item. itemID may also be a 1-based position.
func (t *Tracker) ToggleChecklistItem(ctx context.Context, auditionID, itemID string) (models.Audition, error) {
	return t.updateAudition(ctx, auditionID, func(a models.Audition) (models.Audition, error) {
		i := checklistIndex(a.Checklist, itemID)
		if i < 0 {
			return a, fmt.Errorf("%w: %s", shared.ErrChecklistItemNotFound, itemID)
		}
		a.Checklist = slices.Clone(a.Checklist)
		a.Checklist[i].Completed = !a.Checklist[i].Completed
		return a, nil
	})
}

func checklistIndex(items []models.ChecklistItem, ref string) int {
	if i := slices.IndexFunc(items, func(c models.ChecklistItem) bool { return c.ID == ref }); i >= 0 {
		return i
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return n - 1
	}
	return -1
}

// SaveJournal creates or replaces the audition's journal, keeping the existing journal id.
func (t *Tracker) SaveJournal(ctx context.Context, auditionID string, in JournalInput) (models.Audition, error) {
	return t.updateAudition(ctx, auditionID, func(a models.Audition) (models.Audition, error) {
		id := t.newID()
		if a.Journal != nil {
			id = a.Journal.ID
		}
		a.Journal = &models.JournalEntry{
			ID:             id,
			AuditionID:     a.ID,
			Date:           t.clock.Now(),
			HowItWent:      cmp.Or(in.HowItWent, models.WentGood),
			CallbackStatus: cmp.Or(in.CallbackStatus, models.CallbackPending),
			Notes:          strings.TrimSpace(in.Notes),
			Improvements:   strings.TrimSpace(in.Improvements),
		}
		return a, nil
	})
}

// Favorites returns the favourite show ids in the order they were added.
func (t *Tracker) Favorites() []string {
	return slices.Clone(t.favorites)
}

// IsFavorite reports whether showID is a favourite.
func (t *Tracker) IsFavorite(showID string) bool {
	return slices.Contains(t.favorites, showID)
}

// ToggleFavorite adds or removes a catalog show and reports whether it is now a favourite.
func (t *Tracker) ToggleFavorite(ctx context.Context, showID string) (bool, error) {
	if _, ok := t.catalog.ShowByID(showID); !ok {
		return false, fmt.Errorf("%w: %s", shared.ErrShowNotFound, showID)
	}

	var updated []string
	favorite := !t.IsFavorite(showID)
	if favorite {
		updated = models.Append(t.favorites, showID)
	} else {
		updated = slices.DeleteFunc(slices.Clone(t.favorites), func(id string) bool { return id == showID })
	}

	if err := t.saveFavorites(ctx, updated); err != nil {
		return !favorite, err
	}
	return favorite, nil
}

// Settings returns the current settings.
func (t *Tracker) Settings() models.UserSettings { return t.settings }

// UpdateSettings merges patch into the settings after validating the result.
func (t *Tracker) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.UserSettings, error) {
	next := patch.Apply(t.settings)
	if err := next.Validate(); err != nil {
		return t.settings, fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}
	if err := t.repos.Settings.Save(ctx, next); err != nil {
		return t.settings, err
	}
	t.settings = next
	t.logger.Debug("saved", "key", repositories.KeySettings)
	return next, nil
}
