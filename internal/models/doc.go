// Package models defines domain entities for the encore performer tracker.
//
// The package contains two categories of types:
//
// 1. Catalog reference data: immutable, bundled with the binary
//   - [Show] : A musical with its songs and characters
//   - [Song] : A number from a show with vocal range and type
//   - [Character] : A role in a show
//
// 2. Tracked entities: owned by the local key-value store and replaced wholesale on every write
//   - [RepertoireItem] : A song the user is learning, with status and tags
//   - [PracticeSession] : An append-only practice log record
//   - [Audition] : An audition with checklist and optional [JournalEntry]
//   - [UserSettings] : Vocal range, weekly practice goal and reminder
//
// Tracked entities implement [Model], which exposes the identifier used for
// lookups and a Validate method backed by go-playground/validator.
package models
