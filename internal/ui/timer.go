package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/models"
)

// PracticeLogger records a finished timer run.
type PracticeLogger interface {
	LogPractice(ctx context.Context, itemID string, elapsed time.Duration, notes string) (models.PracticeSession, error)
}

// TimerModel is a practice stopwatch for one repertoire item.
//
// The timer starts paused. Each tick adds one second while running.
type TimerModel struct {
	ctx        context.Context
	logger     PracticeLogger
	itemID     string
	title      string
	notes      string
	elapsed    time.Duration
	running    bool
	generation int
	saving     bool
	saved      *models.PracticeSession
	err        error
	help       help.Model
	keys       keyMap
}

// NewTimerModel creates a paused timer for itemID. title is shown above the clock.
func NewTimerModel(ctx context.Context, logger PracticeLogger, itemID, title, notes string) *TimerModel {
	return &TimerModel{
		ctx:    ctx,
		logger: logger,
		itemID: itemID,
		title:  title,
		notes:  notes,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Elapsed returns the time counted so far.
func (m *TimerModel) Elapsed() time.Duration { return m.elapsed }

// Running reports whether the timer is counting.
func (m *TimerModel) Running() bool { return m.running }

// Saved returns the logged session, or nil when the timer was quit without saving.
func (m *TimerModel) Saved() *models.PracticeSession { return m.saved }

// Err returns the last save error.
func (m *TimerModel) Err() error { return m.err }

func (m *TimerModel) Init() tea.Cmd { return nil }

// Update handles incoming messages and updates the model state.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.running = false
			return m, tea.Quit
		case key.Matches(msg, m.keys.toggle):
			m.running = !m.running
			if m.running {
				m.generation++
				return m, m.tick()
			}
			return m, nil
		case key.Matches(msg, m.keys.save):
			if m.saving {
				return m, nil
			}
			m.saving = true
			m.running = false
			return m, m.save()
		}

	case Msg:
		switch msg.kind {
		case MsgTick:
			t := msg.data.(tick)
			if !m.running || t.generation != m.generation {
				return m, nil
			}
			m.elapsed += time.Second
			return m, m.tick()
		case MsgSessionSaved:
			res := msg.data.(sessionSaved)
			m.saving = false
			if res.err != nil {
				m.err = res.err
				return m, nil
			}
			m.err = nil
			m.saved = &res.session
			return m, tea.Quit
		}
	}
	return m, nil
}

// tick schedules the next second for the current run. Ticks from earlier runs
// carry a stale generation and are ignored.
func (m *TimerModel) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(generation, t)
	})
}

func (m *TimerModel) save() tea.Cmd {
	ctx, logger, itemID, elapsed, notes := m.ctx, m.logger, m.itemID, m.elapsed, m.notes
	return func() tea.Msg {
		session, err := logger.LogPractice(ctx, itemID, elapsed, notes)
		return sessionSavedMsg(session, err)
	}
}

// View renders the clock, its state and any save result.
func (m *TimerModel) View() string {
	title := styles.title.Render(fmt.Sprintf("Practicing: %s", m.title))
	clock := styles.clock.Render(formatter.FormatClock(m.elapsed))

	var state string
	switch {
	case m.saved != nil:
		state = styles.ok.Render(fmt.Sprintf("✓ Logged %d min", m.saved.DurationMinutes))
	case m.running:
		state = "Practicing..."
	case m.elapsed > 0:
		state = "Paused"
	default:
		state = "Ready"
	}

	var errView string
	if m.err != nil {
		errView = "\n" + styles.err.Render(fmt.Sprintf("Not saved: %v", m.err))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.save, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s%s\n\n%s", title, clock, state, errView, helpView)
}
