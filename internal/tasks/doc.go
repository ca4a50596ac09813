// Package tasks holds the application state and the operations that change it.
//
// # Tracker
//
// [Tracker] loads the five persisted collections once, keeps them in memory
// and writes a whole collection back after every mutation. Each mutation
// builds a new slice, saves it, and only then swaps it in, so a failed save
// leaves the in-memory state untouched.
//
// Operations are grouped by collection:
//
//  1. Repertoire : add, remove, notes, status cycle, tag toggle
//  2. Practice : [Tracker.LogPractice] applies the capture rule and bumps the item's counters
//  3. Auditions : add, status toggle, cancel, checklist, journal upsert
//  4. Favourites and settings
//
// Derived views ([Tracker.Stats], [Tracker.FindSongs], [Tracker.CalendarEvents])
// delegate to the finder and practice packages with the tracker's clock and jitter.
//
// # Backup
//
// [Tracker.Backup] writes every collection to a directory using a small worker
// pool and reports progress on a non-blocking [ProgressUpdate] channel.
//
// A Tracker is not safe for concurrent use.
package tasks
