package finder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/encore/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is the requested song character.
type Style string

const (
	StyleAny      Style = "any"
	StyleUptempo  Style = "uptempo"
	StyleBallad   Style = "ballad"
	StyleComedic  Style = "comedic"
	StyleDramatic Style = "dramatic"
	StyleLegit    Style = "legit"
)

// Styles lists the selectable styles, [StyleAny] first.
var Styles = []Style{StyleAny, StyleUptempo, StyleBallad, StyleComedic, StyleDramatic, StyleLegit}

// AuditionType is the kind of audition the song is for.
type AuditionType string

const (
	AuditionAny          AuditionType = "any"
	AuditionGeneral      AuditionType = "general"
	AuditionContemporary AuditionType = "contemporary"
	AuditionClassic      AuditionType = "classic"
	AuditionBelt         AuditionType = "belt"
	AuditionLegit        AuditionType = "legit"
)

// AuditionTypes lists the selectable audition types, [AuditionAny] first.
var AuditionTypes = []AuditionType{AuditionAny, AuditionGeneral, AuditionContemporary, AuditionClassic, AuditionBelt, AuditionLegit}

// Reasons attached to matches.
const (
	ReasonRange        = "Matches your vocal range"
	ReasonPartialRange = "Partial range match"
	ReasonContemporary = "Contemporary show"
	ReasonClassic      = "Classic show"
	ReasonBelt         = "Great belt showcase"
	ReasonLegit        = "Legit singing showcase"
	ReasonSolo         = "Solo"
)

// ErrUnknownOption is returned when a style or audition type cannot be parsed.
var ErrUnknownOption = errors.New("unknown option")

// Threshold is the score a candidate must exceed to be returned.
const Threshold = 15.0

// DefaultLimit is the number of matches callers show.
const DefaultLimit = 12

// Query describes what the singer is looking for.
type Query struct {
	VocalRange   string
	Style        Style
	AuditionType AuditionType
	Exclude      map[string]struct{} // song ids to skip
}

// Match is a scored song with the reasons it scored.
type Match struct {
	Song    models.Song
	Show    models.Show
	Score   float64
	Reasons []string
}

// TopReasons returns at most n reasons.
func (m Match) TopReasons(n int) []string {
	if n < 0 || len(m.Reasons) <= n {
		return m.Reasons
	}
	return m.Reasons[:n]
}

// FindMatches scores every non-ensemble song in shows against q and returns
// those scoring above [Threshold], best first.
//
// An empty Style or AuditionType is treated as any.
func FindMatches(shows []models.Show, q Query, jitter Jitter) []Match {
	if jitter == nil {
		jitter = Zero
	}

	var matches []Match
	for _, show := range shows {
		for _, song := range show.Songs {
			if song.Type == models.SongEnsemble {
				continue
			}
			if _, skip := q.Exclude[song.ID]; skip {
				continue
			}

			m := score(show, song, q)
			m.Score += MaxJitter * jitter.Float64()
			if m.Score > Threshold {
				matches = append(matches, m)
			}
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return matches
}

func score(show models.Show, song models.Song, q Query) Match {
	m := Match{Song: song, Show: show, Reasons: []string{}}

	if q.VocalRange != "" {
		switch {
		case RangeMatches(song.VocalRange, q.VocalRange):
			m.Score += 30
			m.Reasons = append(m.Reasons, ReasonRange)
		case partialRangeMatches(song.VocalRange, q.VocalRange):
			m.Score += 15
			m.Reasons = append(m.Reasons, ReasonPartialRange)
		}
	} else {
		m.Score += 10
	}

	if style := q.Style; style != "" && style != StyleAny {
		if HasStyle(song.ID, style) {
			m.Score += 25
			m.Reasons = append(m.Reasons, StyleReason(style))
		}
	} else {
		m.Score += 5
	}

	switch q.AuditionType {
	case AuditionAny, "":
		m.Score += 5
	case AuditionContemporary:
		if show.Genre == models.GenreContemporary || show.Genre == models.GenreRock {
			m.Score += 20
			m.Reasons = append(m.Reasons, ReasonContemporary)
		}
	case AuditionClassic:
		if show.Genre == models.GenreClassic || show.Genre == models.GenreDrama {
			m.Score += 20
			m.Reasons = append(m.Reasons, ReasonClassic)
		}
	case AuditionBelt:
		if IsBeltShowcase(song.ID) {
			m.Score += 25
			m.Reasons = append(m.Reasons, ReasonBelt)
		}
	case AuditionLegit:
		if IsLegitShowcase(song.ID) {
			m.Score += 25
			m.Reasons = append(m.Reasons, ReasonLegit)
		}
	case AuditionGeneral:
		m.Score += 10
	}

	switch song.Type {
	case models.SongSolo:
		m.Score += 10
		m.Reasons = append(m.Reasons, ReasonSolo)
	case models.SongDuet:
		m.Score += 3
	}

	return m
}

// RangeMatches reports whether a song range suits the user's range: a
// case-insensitive substring match, or the Mixed sentinel.
func RangeMatches(songRange, userRange string) bool {
	if userRange == "" {
		return false
	}
	songRange = strings.ToLower(songRange)
	return strings.Contains(songRange, strings.ToLower(userRange)) || songRange == strings.ToLower(models.MixedRange)
}

func partialRangeMatches(songRange, userRange string) bool {
	prefix, _, _ := strings.Cut(strings.ToLower(userRange), "/")
	return strings.Contains(strings.ToLower(songRange), prefix)
}

// StyleReason renders the reason for a style hit, e.g. "Ballad style".
func StyleReason(s Style) string {
	return cases.Title(language.Und).String(string(s)) + " style"
}

// Top returns at most n matches. n <= 0 uses [DefaultLimit].
func Top(matches []Match, n int) []Match {
	if n <= 0 {
		n = DefaultLimit
	}
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}

// ParseStyle parses a style name. Empty input means [StyleAny].
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleAny, nil
	}
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Styles, style) {
		return "", fmt.Errorf("style %q: %w", s, ErrUnknownOption)
	}
	return style, nil
}

// ParseAuditionType parses an audition type name. Empty input means [AuditionAny].
func ParseAuditionType(s string) (AuditionType, error) {
	if s == "" {
		return AuditionAny, nil
	}
	t := AuditionType(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AuditionTypes, t) {
		return "", fmt.Errorf("audition type %q: %w", s, ErrUnknownOption)
	}
	return t, nil
}
