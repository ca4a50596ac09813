// Package ui implements the interactive terminal screens using bubbletea's Elm architecture.
//
// Two programs are provided:
//  1. [FinderModel] : the Song Finder, stepping through [RangeView], [StyleView] and [TypeView]
//     before listing scored matches in [ResultsView]. "r" reshuffles, "a" adds the highlighted song.
//  2. [TimerModel] : a practice stopwatch. Space starts and pauses, "s" stops and logs the
//     session, "q" quits without saving.
//
// Both models implement the standard Init/Update/View pattern and receive async results
// through the [Msg] union type. They depend on small interfaces ([SongFinder], [PracticeLogger])
// that the tasks.Tracker satisfies.
package ui
