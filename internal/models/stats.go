package models

import (
	"slices"
	"time"
)

// ProfileStats is the overview shown on the profile screen.
type ProfileStats struct {
	TotalSongs        int     `json:"totalSongs"`
	ReadyCount        int     `json:"readyCount"`
	UpcomingAuditions int     `json:"upcomingAuditions"`
	BookedCount       int     `json:"bookedCount"`
	FavoriteCount     int     `json:"favoriteCount"`
	TotalSessions     int     `json:"totalSessions"`
	TotalMinutes      int     `json:"totalMinutes"`
	ThisWeek          int     `json:"thisWeek"`
	WeeklyGoal        int     `json:"weeklyGoal"`
	WeeklyRatio       float64 `json:"weeklyRatio"`
	Streak            int     `json:"streak"`
}

// EventKind distinguishes calendar entries.
type EventKind string

const (
	EventAudition EventKind = "audition"
	EventPractice EventKind = "practice"
)

// CalendarEvent is one audition or practice session on a day.
type CalendarEvent struct {
	Kind     EventKind `json:"type"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Date     time.Time `json:"date"`
}

// CalendarMonth holds a month's events keyed by day of month.
type CalendarMonth struct {
	Year          int                     `json:"year"`
	Month         time.Month              `json:"month"`
	Location      *time.Location          `json:"-"`
	Days          map[int][]CalendarEvent `json:"days"`
	AuditionCount int                     `json:"auditionCount"`
	PracticeCount int                     `json:"practiceCount"`
}

// EventDays returns the days that have events, ascending.
func (m CalendarMonth) EventDays() []int {
	days := make([]int, 0, len(m.Days))
	for d := range m.Days {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
