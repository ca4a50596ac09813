package models

import "time"

// AuditionStatus is the lifecycle state of an [Audition].
type AuditionStatus string

const (
	AuditionUpcoming  AuditionStatus = "upcoming"
	AuditionCompleted AuditionStatus = "completed"
	AuditionCancelled AuditionStatus = "cancelled"
)

func (s AuditionStatus) Valid() bool {
	switch s {
	case AuditionUpcoming, AuditionCompleted, AuditionCancelled:
		return true
	}
	return false
}

// HowItWent is the self-assessment recorded in a [JournalEntry].
type HowItWent string

const (
	WentGreat HowItWent = "great"
	WentGood  HowItWent = "good"
	WentOkay  HowItWent = "okay"
	WentRough HowItWent = "rough"
)

// CallbackStatus tracks the outcome of an audition.
type CallbackStatus string

const (
	CallbackPending CallbackStatus = "pending"
	CallbackYes     CallbackStatus = "callback"
	CallbackNo      CallbackStatus = "no-callback"
	CallbackBooked  CallbackStatus = "booked"
)

// DefaultChecklistLabels seeds the checklist of every new audition.
var DefaultChecklistLabels = []string{
	"Prepare audition song",
	"Review sides/script",
	"Prepare monologue",
	"Research the show",
	"Plan outfit",
	"Warm up vocals",
}

// ChecklistItem is a single preparation step.
type ChecklistItem struct {
	ID        string `json:"id" validate:"required"`
	Label     string `json:"label" validate:"required"`
	Completed bool   `json:"completed"`
}

// JournalEntry is the post-audition reflection. An audition has at most one.
type JournalEntry struct {
	ID             string         `json:"id" validate:"required"`
	AuditionID     string         `json:"auditionId" validate:"required"`
	Date           time.Time      `json:"date"`
	HowItWent      HowItWent      `json:"howItWent" validate:"oneof=great good okay rough"`
	CallbackStatus CallbackStatus `json:"callbackStatus" validate:"oneof=pending callback no-callback booked"`
	Notes          string         `json:"notes"`
	Improvements   string         `json:"improvements"`
}

// Audition is a scheduled or past audition.
type Audition struct {
	ID        string          `json:"id" validate:"required"`
	ShowTitle string          `json:"showTitle" validate:"required"`
	Role      string          `json:"role" validate:"required"`
	Date      time.Time       `json:"date"`
	Location  string          `json:"location"`
	Notes     string          `json:"notes"`
	Checklist []ChecklistItem `json:"checklist" validate:"dive"`
	Status    AuditionStatus  `json:"status" validate:"oneof=upcoming completed cancelled"`
	Journal   *JournalEntry   `json:"journal,omitempty" validate:"omitnil"`
}

func (a Audition) Key() string { return a.ID }

func (a Audition) Validate() error { return ValidateStruct(a) }

// Booked reports whether the journal records a booked role.
func (a Audition) Booked() bool {
	return a.Journal != nil && a.Journal.CallbackStatus == CallbackBooked
}

// ChecklistProgress returns the number of completed items and the total.
func (a Audition) ChecklistProgress() (done, total int) {
	for _, item := range a.Checklist {
		if item.Completed {
			done++
		}
	}
	return done, len(a.Checklist)
}

// NewChecklist builds the default checklist, assigning ids with newID.
func NewChecklist(newID func() string) []ChecklistItem {
	items := make([]ChecklistItem, len(DefaultChecklistLabels))
	for i, label := range DefaultChecklistLabels {
		items[i] = ChecklistItem{ID: newID(), Label: label}
	}
	return items
}
