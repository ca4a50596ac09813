package tasks

import (
	"fmt"
	"time"

	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/practice"
)

// Stats computes the profile overview at the tracker clock's now.
func (t *Tracker) Stats() models.ProfileStats {
	summary := practice.Summarize(t.sessions, t.settings.PracticeGoalPerWeek, t.clock.Now())
	s := models.ProfileStats{
		TotalSongs:    len(t.repertoire),
		FavoriteCount: len(t.favorites),
		TotalSessions: summary.TotalSessions,
		TotalMinutes:  summary.TotalMinutes,
		ThisWeek:      summary.ThisWeek,
		WeeklyGoal:    summary.Weekly.Goal,
		WeeklyRatio:   summary.Weekly.Ratio,
		Streak:        summary.Streak,
	}
	for _, item := range t.repertoire {
		if item.Status == models.StatusPerformanceReady {
			s.ReadyCount++
		}
	}
	for _, a := range t.auditions {
		if a.Status == models.AuditionUpcoming {
			s.UpcomingAuditions++
		}
		if a.Booked() {
			s.BookedCount++
		}
	}
	return s
}

// RecentPractice returns the n newest sessions.
func (t *Tracker) RecentPractice(n int) []models.PracticeSession {
	return practice.Recent(t.sessions, n)
}

// FindSongs runs the Song Finder over the catalog with the tracker's jitter.
func (t *Tracker) FindSongs(q finder.Query) []finder.Match {
	return finder.FindMatches(t.catalog.ListShows(), q, t.jitter)
}

// SongTitle resolves a repertoire item id to its song title.
func (t *Tracker) SongTitle(itemID string) (string, bool) {
	item, ok := models.Find(t.repertoire, itemID)
	if !ok {
		return "", false
	}
	ref, ok := t.catalog.SongByID(item.SongID)
	if !ok {
		return "", false
	}
	return ref.Song.Title, true
}

// CalendarEvents groups auditions and practice sessions falling in year/month,
// using calendar days in the tracker clock's location.
func (t *Tracker) CalendarEvents(year int, month time.Month) models.CalendarMonth {
	loc := t.clock.Now().Location()
	cal := models.CalendarMonth{Year: year, Month: month, Location: loc, Days: make(map[int][]models.CalendarEvent)}

	inMonth := func(ts time.Time) (int, bool) {
		y, m, d := ts.In(loc).Date()
		return d, y == year && m == month
	}

	for _, a := range t.Auditions(FilterAll) {
		day, ok := inMonth(a.Date)
		if !ok {
			continue
		}
		subtitle := a.Role
		if a.Location != "" {
			subtitle += " · " + a.Location
		}
		cal.Days[day] = append(cal.Days[day], models.CalendarEvent{
			Kind: models.EventAudition, ID: a.ID, Title: a.ShowTitle, Subtitle: subtitle, Date: a.Date,
		})
		cal.AuditionCount++
	}

	for _, s := range t.sessions {
		day, ok := inMonth(s.Date)
		if !ok {
			continue
		}
		title, found := t.SongTitle(s.RepertoireItemID)
		if !found {
			title = "Practice Session"
		}
		subtitle := fmt.Sprintf("%d min", s.DurationMinutes)
		if s.Notes != "" {
			subtitle += " · " + s.Notes
		}
		cal.Days[day] = append(cal.Days[day], models.CalendarEvent{
			Kind: models.EventPractice, ID: s.ID, Title: title, Subtitle: subtitle, Date: s.Date,
		})
		cal.PracticeCount++
	}

	return cal
}
