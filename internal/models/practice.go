package models

import "time"

// PracticeSession is one logged practice run for a repertoire item.
//
// Sessions are append-only.
type PracticeSession struct {
	ID               string    `json:"id" validate:"required"`
	RepertoireItemID string    `json:"repertoireItemId" validate:"required"`
	Date             time.Time `json:"date"`
	DurationMinutes  int       `json:"durationMinutes"`
	Notes            string    `json:"notes"`
}

func (p PracticeSession) Key() string { return p.ID }

func (p PracticeSession) Validate() error { return ValidateStruct(p) }
