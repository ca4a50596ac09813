package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/models"
)

// ViewState represents the current view of the Song Finder.
type ViewState int

const (
	RangeView ViewState = iota
	StyleView
	TypeView
	ResultsView
)

// SongFinder is the part of the tracker the Song Finder uses.
type SongFinder interface {
	FindSongs(q finder.Query) []finder.Match
	AddToRepertoire(ctx context.Context, songID string) (models.RepertoireItem, error)
	IsInRepertoire(songID string) bool
}

// FinderModel is the Song Finder: pick a range, a style and an audition type,
// then browse the scored matches.
type FinderModel struct {
	ctx     context.Context
	view    ViewState
	tracker SongFinder
	limit   int
	query   finder.Query
	width   int
	height  int
	ranges  list.Model
	styles  list.Model
	types   list.Model
	results list.Model
	added   int
	status  string
	err     error
	help    help.Model
	keys    keyMap
}

// NewFinderModel creates a Song Finder. vocalRange preselects the user's range
// when it is one of [models.VocalRanges]. limit <= 0 uses [finder.DefaultLimit].
func NewFinderModel(ctx context.Context, tracker SongFinder, vocalRange string, limit int) *FinderModel {
	if limit <= 0 {
		limit = finder.DefaultLimit
	}

	m := &FinderModel{
		ctx:     ctx,
		view:    RangeView,
		tracker: tracker,
		limit:   limit,
		ranges:  newOptionList("What's your vocal range?", rangeOptions(models.VocalRanges)),
		styles:  newOptionList("What style of song?", styleOptions()),
		types:   newOptionList("What kind of audition?", auditionOptions()),
		results: newOptionList("Matches", nil),
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.resize()
	if i := slices.Index(models.VocalRanges, vocalRange); i >= 0 {
		m.ranges.Select(i)
	}
	return m
}

// View returns the active view.
func (m *FinderModel) View() string {
	switch m.view {
	case RangeView:
		return m.renderSelection(m.ranges)
	case StyleView:
		return m.renderSelection(m.styles)
	case TypeView:
		return m.renderSelection(m.types)
	case ResultsView:
		return m.renderResults()
	default:
		return ""
	}
}

// State returns the active view state.
func (m *FinderModel) State() ViewState { return m.view }

// Query returns the query built from the selections so far.
func (m *FinderModel) Query() finder.Query { return m.query }

// Added reports how many songs were added to the repertoire in this session.
func (m *FinderModel) Added() int { return m.added }

func (m *FinderModel) Init() tea.Cmd { return nil }

// Update handles incoming messages and updates the model state.
func (m *FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		switch m.view {
		case RangeView, StyleView, TypeView:
			return m.handleSelectionKeys(msg)
		case ResultsView:
			return m.handleResultKeys(msg)
		}

	case Msg:
		if msg.kind == MsgSongAdded {
			m.handleSongAdded(msg.data.(songAdded))
		}
		return m, nil
	}

	return m.updateActive(msg)
}

func (m *FinderModel) active() *list.Model {
	switch m.view {
	case StyleView:
		return &m.styles
	case TypeView:
		return &m.types
	case ResultsView:
		return &m.results
	default:
		return &m.ranges
	}
}

func (m *FinderModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := m.active()
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m *FinderModel) handleSelectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		if m.view > RangeView {
			m.view--
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		selected, ok := m.active().SelectedItem().(optionItem)
		if !ok {
			return m, nil
		}
		switch m.view {
		case RangeView:
			m.query.VocalRange = selected.value
			m.view = StyleView
		case StyleView:
			m.query.Style = finder.Style(selected.value)
			m.view = TypeView
		case TypeView:
			m.query.AuditionType = finder.AuditionType(selected.value)
			m.search()
			m.view = ResultsView
		}
		return m, nil
	}
	return m.updateActive(msg)
}

func (m *FinderModel) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = TypeView
		m.status, m.err = "", nil
		return m, nil
	case key.Matches(msg, m.keys.reshuffle):
		m.search()
		return m, nil
	case key.Matches(msg, m.keys.add):
		return m, m.addSelected()
	}
	return m.updateActive(msg)
}

// search draws a fresh set of matches. Each call uses new jitter, so
// near-equal scores may reorder.
func (m *FinderModel) search() {
	matches := finder.Top(m.tracker.FindSongs(m.query), m.limit)

	items := make([]list.Item, len(matches))
	for i, match := range matches {
		items[i] = matchItem{match: match, added: m.tracker.IsInRepertoire(match.Song.ID)}
	}

	m.results = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.results.Title = fmt.Sprintf("Top %d songs for %s", len(matches), m.describeQuery())
	m.results.SetFilteringEnabled(false)
	m.results.SetShowHelp(false)
	m.resize()

	m.err = nil
	if len(matches) == 0 {
		m.status = "No matches. Try a different style or audition type."
	} else {
		m.status = ""
	}
}

func (m *FinderModel) describeQuery() string {
	parts := []string{m.query.VocalRange}
	if m.query.Style != "" && m.query.Style != finder.StyleAny {
		parts = append(parts, string(m.query.Style))
	}
	if m.query.AuditionType != "" && m.query.AuditionType != finder.AuditionAny {
		parts = append(parts, string(m.query.AuditionType)+" auditions")
	}
	return strings.Join(parts, ", ")
}

func (m *FinderModel) addSelected() tea.Cmd {
	selected, ok := m.results.SelectedItem().(matchItem)
	if !ok {
		return nil
	}
	songID := selected.match.Song.ID
	if selected.added || m.tracker.IsInRepertoire(songID) {
		m.status = fmt.Sprintf("%s is already in your repertoire", selected.match.Song.Title)
		return nil
	}

	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		item, err := tracker.AddToRepertoire(ctx, songID)
		return songAddedMsg(songID, item, err)
	}
}

func (m *FinderModel) handleSongAdded(res songAdded) {
	if res.err != nil {
		m.err = res.err
		return
	}
	m.added++
	m.err = nil

	for i, it := range m.results.Items() {
		mi, ok := it.(matchItem)
		if !ok || mi.match.Song.ID != res.songID {
			continue
		}
		mi.added = true
		m.results.SetItem(i, mi)
		m.status = fmt.Sprintf("Added %s to your repertoire", mi.match.Song.Title)
	}
}

func (m *FinderModel) resize() {
	w, h := m.width-4, m.height-8
	if m.width == 0 || m.height == 0 {
		w, h = 76, 20
	}
	for _, l := range []*list.Model{&m.ranges, &m.styles, &m.types, &m.results} {
		l.SetSize(w, h)
	}
}

func (m *FinderModel) renderSelection(l list.Model) string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	if m.view > RangeView {
		helpKeys = []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	}
	return fmt.Sprintf("%s\n\n%s", l.View(), m.help.ShortHelpView(helpKeys))
}

func (m *FinderModel) renderResults() string {
	var status string
	switch {
	case m.err != nil:
		status = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		status = styles.ok.Render(m.status)
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.reshuffle, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.results.View(), status, helpView)
}
