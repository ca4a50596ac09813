package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/encore/internal/finder"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	_ list.Item = optionItem{}
	_ list.Item = matchItem{}
)

// optionItem is one choice in a selection step.
type optionItem struct {
	value string
	label string
	desc  string
}

func (i optionItem) FilterValue() string { return i.label }
func (i optionItem) Title() string       { return i.label }
func (i optionItem) Description() string { return i.desc }

// matchItem wraps [finder.Match] to implement [list.Item].
type matchItem struct {
	match finder.Match
	added bool
}

func (i matchItem) FilterValue() string { return i.match.Song.Title }
func (i matchItem) Title() string {
	title := fmt.Sprintf("%s (%.0f)", i.match.Song.Title, i.match.Score)
	if i.added {
		title += " ✓"
	}
	return title
}
func (i matchItem) Description() string {
	desc := fmt.Sprintf("%s • %s • %s", i.match.Show.Title, i.match.Song.Character, i.match.Song.VocalRange)
	if reasons := i.match.TopReasons(3); len(reasons) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(reasons, ", "))
	}
	return desc
}

func newOptionList(title string, options []optionItem) list.Model {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = o
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func rangeOptions(ranges []string) []optionItem {
	opts := make([]optionItem, len(ranges))
	for i, r := range ranges {
		opts[i] = optionItem{value: r, label: r}
	}
	return opts
}

var styleDescriptions = map[finder.Style]string{
	finder.StyleAny:      "No preference",
	finder.StyleUptempo:  "Energetic, driving numbers",
	finder.StyleBallad:   "Slow, lyrical songs",
	finder.StyleComedic:  "Character and comedy songs",
	finder.StyleDramatic: "Intense acting pieces",
	finder.StyleLegit:    "Classical, legit technique",
}

func styleOptions() []optionItem {
	opts := make([]optionItem, len(finder.Styles))
	for i, s := range finder.Styles {
		opts[i] = optionItem{value: string(s), label: titleCase(string(s)), desc: styleDescriptions[s]}
	}
	return opts
}

var auditionDescriptions = map[finder.AuditionType]string{
	finder.AuditionAny:          "No preference",
	finder.AuditionGeneral:      "Season or general auditions",
	finder.AuditionContemporary: "Contemporary musical theatre",
	finder.AuditionClassic:      "Golden age and classic shows",
	finder.AuditionBelt:         "Roles that call for a belt",
	finder.AuditionLegit:        "Roles that call for legit singing",
}

func auditionOptions() []optionItem {
	opts := make([]optionItem, len(finder.AuditionTypes))
	for i, a := range finder.AuditionTypes {
		opts[i] = optionItem{value: string(a), label: titleCase(string(a)), desc: auditionDescriptions[a]}
	}
	return opts
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
