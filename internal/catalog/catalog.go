package catalog

import (
	"slices"
	"strings"

	"github.com/desertthunder/encore/internal/models"
	"golang.org/x/text/cases"
)

// Catalog is an indexed, read-only set of shows.
type Catalog struct {
	shows  []models.Show
	byShow map[string]int
	bySong map[string]songIndex
}

type songIndex struct {
	show int
	song int
}

// foldString case-folds s. Casers are stateful, so each call gets its own.
func foldString(s string) string { return cases.Fold().String(s) }

// New indexes shows. The slice is copied.
func New(shows []models.Show) *Catalog {
	c := &Catalog{
		shows:  slices.Clone(shows),
		byShow: make(map[string]int, len(shows)),
		bySong: make(map[string]songIndex),
	}
	for i, show := range c.shows {
		c.byShow[show.ID] = i
		for j, song := range show.Songs {
			c.bySong[song.ID] = songIndex{show: i, song: j}
		}
	}
	return c
}

var bundled = New(bundledShows)

// Default returns the catalog shipped with the binary.
func Default() *Catalog { return bundled }

// ListShows returns every show in catalog order.
func (c *Catalog) ListShows() []models.Show {
	return slices.Clone(c.shows)
}

// Len returns the number of shows.
func (c *Catalog) Len() int { return len(c.shows) }

// ShowByID looks a show up by id.
func (c *Catalog) ShowByID(id string) (*models.Show, bool) {
	i, ok := c.byShow[id]
	if !ok {
		return nil, false
	}
	show := c.shows[i]
	return &show, true
}

// SongByID looks a song up by id and returns it with its show.
func (c *Catalog) SongByID(id string) (models.SongRef, bool) {
	idx, ok := c.bySong[id]
	if !ok {
		return models.SongRef{}, false
	}
	show := c.shows[idx.show]
	return models.SongRef{Song: show.Songs[idx.song], Show: show}, true
}

// Search filters shows by a case-insensitive title or composer substring and a genre.
//
// An empty term matches everything; [models.GenreAll] or "" disables the genre filter.
func (c *Catalog) Search(term string, genre models.Genre) []models.Show {
	needle := foldString(strings.TrimSpace(term))
	var out []models.Show
	for _, show := range c.shows {
		if genre != "" && genre != models.GenreAll && show.Genre != genre {
			continue
		}
		if needle != "" &&
			!strings.Contains(foldString(show.Title), needle) &&
			!strings.Contains(foldString(show.Composer), needle) {
			continue
		}
		out = append(out, show)
	}
	return out
}

// Genres returns the filterable genres, starting with [models.GenreAll].
func (c *Catalog) Genres() []models.Genre {
	return slices.Clone(models.Genres)
}

// MatchesVocalRange reports whether any song in show suits vocalRange.
//
// Songs with the Mixed range suit everyone. An empty range matches every show.
func MatchesVocalRange(show models.Show, vocalRange string) bool {
	if vocalRange == "" {
		return true
	}
	for _, song := range show.Songs {
		if song.VocalRange == models.MixedRange || SongInRange(song, vocalRange) {
			return true
		}
	}
	return false
}

// SongInRange reports whether the song's range contains vocalRange, ignoring case.
func SongInRange(song models.Song, vocalRange string) bool {
	return vocalRange != "" && strings.Contains(foldString(song.VocalRange), foldString(vocalRange))
}

// RangeMatchCount counts the songs in show whose range contains vocalRange.
func RangeMatchCount(show models.Show, vocalRange string) int {
	n := 0
	for _, song := range show.Songs {
		if SongInRange(song, vocalRange) {
			n++
		}
	}
	return n
}

// Act is one act of a show with its songs in running order.
type Act struct {
	Number int
	Songs  []models.Song
}

// SongsByAct groups the show's songs by act, in ascending act order.
func SongsByAct(show models.Show) []Act {
	var acts []Act
	for _, song := range show.Songs {
		i := slices.IndexFunc(acts, func(a Act) bool { return a.Number == song.Act })
		if i < 0 {
			acts = append(acts, Act{Number: song.Act})
			i = len(acts) - 1
		}
		acts[i].Songs = append(acts[i].Songs, song)
	}
	slices.SortStableFunc(acts, func(a, b Act) int { return a.Number - b.Number })
	return acts
}
