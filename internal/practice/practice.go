package practice

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/desertthunder/encore/internal/models"
)

// Week is the rolling window used for weekly statistics.
const Week = 7 * 24 * time.Hour

// MinSessionLength is the shortest timer run that is recorded.
const MinSessionLength = 10 * time.Second

// ErrSessionTooShort is returned by [SessionMinutes] for runs under [MinSessionLength].
var ErrSessionTooShort = errors.New("practice session too short")

// TotalMinutes sums the duration of every session.
func TotalMinutes(sessions []models.PracticeSession) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	return total
}

// ThisWeek returns the sessions dated strictly after now minus seven days.
func ThisWeek(sessions []models.PracticeSession, now time.Time) []models.PracticeSession {
	cutoff := now.Add(-Week)
	var out []models.PracticeSession
	for _, s := range sessions {
		if s.Date.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// Progress is weekly sessions measured against the goal.
type Progress struct {
	Done  int
	Goal  int
	Ratio float64 // done/goal, at most 1
}

// Met reports whether the goal has been reached.
func (p Progress) Met() bool { return p.Goal > 0 && p.Done >= p.Goal }

// WeeklyProgress computes done/goal clamped to 1. A goal of zero or less yields 0.
func WeeklyProgress(done, goal int) Progress {
	p := Progress{Done: done, Goal: goal}
	if goal <= 0 {
		return p
	}
	p.Ratio = math.Min(float64(done)/float64(goal), 1)
	return p
}

// CurrentStreak counts consecutive calendar days with practice, ending today.
//
// Days are taken in now's location. A day without practice today does not
// break the streak; the first missing day before today does.
func CurrentStreak(sessions []models.PracticeSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[civilDate]struct{}, len(sessions))
	for _, s := range sessions {
		days[dateOf(s.Date.In(now.Location()))] = struct{}{}
	}

	streak := 0
	today := now
	for i := 0; ; i++ {
		if _, ok := days[dateOf(today.AddDate(0, 0, -i))]; ok {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}
	return streak
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{y, m, d}
}

// SessionMinutes converts a timer run into whole minutes: seconds/60 rounded,
// at least 1. Runs under [MinSessionLength] are rejected.
func SessionMinutes(elapsed time.Duration) (int, error) {
	return SessionMinutesWithMin(elapsed, MinSessionLength)
}

// SessionMinutesWithMin is [SessionMinutes] with a configurable minimum.
func SessionMinutesWithMin(elapsed, minimum time.Duration) (int, error) {
	if elapsed < minimum {
		return 0, fmt.Errorf("%s elapsed, need %s: %w", elapsed.Round(time.Second), minimum, ErrSessionTooShort)
	}
	minutes := int(math.Round(elapsed.Seconds() / 60))
	return max(1, minutes), nil
}

// Recent returns up to n sessions, newest first.
func Recent(sessions []models.PracticeSession, n int) []models.PracticeSession {
	out := slices.Clone(sessions)
	slices.SortStableFunc(out, func(a, b models.PracticeSession) int {
		return b.Date.Compare(a.Date)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summary bundles the analytics shown on the profile and practice screens.
type Summary struct {
	TotalSessions int
	TotalMinutes  int
	ThisWeek      int
	Streak        int
	Weekly        Progress
}

// Summarize computes every statistic for sessions at now.
func Summarize(sessions []models.PracticeSession, goal int, now time.Time) Summary {
	week := len(ThisWeek(sessions, now))
	return Summary{
		TotalSessions: len(sessions),
		TotalMinutes:  TotalMinutes(sessions),
		ThisWeek:      week,
		Streak:        CurrentStreak(sessions, now),
		Weekly:        WeeklyProgress(week, goal),
	}
}
