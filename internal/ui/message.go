package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/encore/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSongAdded MsgKind = iota
	MsgSessionSaved
	MsgTick
)

type songAdded struct {
	songID string
	item   models.RepertoireItem
	err    error
}

type sessionSaved struct {
	session models.PracticeSession
	err     error
}

type tick struct {
	generation int
	at         time.Time
}

// songAddedMsg is the constructor for [MsgSongAdded]
func songAddedMsg(songID string, item models.RepertoireItem, err error) Msg {
	return Msg{kind: MsgSongAdded, data: songAdded{songID: songID, item: item, err: err}}
}

// sessionSavedMsg is the constructor for [MsgSessionSaved]
func sessionSavedMsg(session models.PracticeSession, err error) Msg {
	return Msg{kind: MsgSessionSaved, data: sessionSaved{session: session, err: err}}
}

// tickMsg is the constructor for [MsgTick]
func tickMsg(generation int, at time.Time) Msg {
	return Msg{kind: MsgTick, data: tick{generation: generation, at: at}}
}
