package models

import "time"

// RepertoireStatus is how far along a repertoire song is.
type RepertoireStatus string

const (
	StatusLearning         RepertoireStatus = "learning"
	StatusPolishing        RepertoireStatus = "polishing"
	StatusPerformanceReady RepertoireStatus = "performance-ready"
)

// Next returns the status that follows s in the learning cycle.
//
// Unknown values restart the cycle at [StatusLearning].
func (s RepertoireStatus) Next() RepertoireStatus {
	switch s {
	case StatusLearning:
		return StatusPolishing
	case StatusPolishing:
		return StatusPerformanceReady
	default:
		return StatusLearning
	}
}

// Valid reports whether s is a known status.
func (s RepertoireStatus) Valid() bool {
	switch s {
	case StatusLearning, StatusPolishing, StatusPerformanceReady:
		return true
	}
	return false
}

// SongTag is a free-form label from a fixed vocabulary.
type SongTag string

const (
	TagUptempo       SongTag = "uptempo"
	TagBallad        SongTag = "ballad"
	TagComedic       SongTag = "comedic"
	TagDramatic      SongTag = "dramatic"
	TagPatter        SongTag = "patter"
	TagBelt          SongTag = "belt"
	TagLegit         SongTag = "legit"
	TagContemporary  SongTag = "contemporary"
	TagClassic       SongTag = "classic"
	TagAuditionReady SongTag = "audition-ready"
)

// AllTags is the tag vocabulary in display order.
var AllTags = []SongTag{
	TagUptempo, TagBallad, TagComedic, TagDramatic, TagPatter,
	TagBelt, TagLegit, TagContemporary, TagClassic, TagAuditionReady,
}

// Valid reports whether t belongs to [AllTags].
func (t SongTag) Valid() bool {
	for _, tag := range AllTags {
		if tag == t {
			return true
		}
	}
	return false
}

// RepertoireItem is a catalog song the user is working on.
type RepertoireItem struct {
	ID            string           `json:"id" validate:"required"`
	SongID        string           `json:"songId" validate:"required"`
	ShowID        string           `json:"showId" validate:"required"`
	AddedAt       time.Time        `json:"addedAt"`
	Notes         string           `json:"notes"`
	Lyrics        string           `json:"lyrics"`
	PracticeCount int              `json:"practiceCount" validate:"min=0"`
	LastPracticed *time.Time       `json:"lastPracticed,omitempty"`
	Status        RepertoireStatus `json:"status" validate:"oneof=learning polishing performance-ready"`
	Tags          []SongTag        `json:"tags" validate:"dive,oneof=uptempo ballad comedic dramatic patter belt legit contemporary classic audition-ready"`
}

func (r RepertoireItem) Key() string { return r.ID }

func (r RepertoireItem) Validate() error { return ValidateStruct(r) }

// HasTag reports whether tag is set on the item.
func (r RepertoireItem) HasTag(tag SongTag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WithTagToggled returns a copy of r with tag added or removed.
func (r RepertoireItem) WithTagToggled(tag SongTag) RepertoireItem {
	tags := make([]SongTag, 0, len(r.Tags)+1)
	found := false
	for _, t := range r.Tags {
		if t == tag {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	if !found {
		tags = append(tags, tag)
	}
	r.Tags = tags
	return r
}
