// Package practice computes statistics over the practice session log.
//
// Every function takes the log and the current time explicitly and is
// recomputed on each read; nothing here keeps state.
package practice
