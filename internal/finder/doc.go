// Package finder scores catalog songs against a singer's preferences.
//
// [FindMatches] is pure: given the same shows, query and [Jitter] draws it
// always returns the same ordered matches. Production callers pass a
// time-seeded jitter so repeated searches reshuffle near-ties.
package finder
