package models

// SongType classifies how a song is performed.
type SongType string

const (
	SongSolo      SongType = "solo"
	SongDuet      SongType = "duet"
	SongEnsemble  SongType = "ensemble"
	SongMonologue SongType = "monologue"
)

// Genre is a show's catalog genre.
type Genre string

const (
	GenreAll          Genre = "All" // filter sentinel, never set on a show
	GenreClassic      Genre = "Classic"
	GenreContemporary Genre = "Contemporary"
	GenreRock         Genre = "Rock"
	GenreComedy       Genre = "Comedy"
	GenreDrama        Genre = "Drama"
	GenreRevival      Genre = "Revival"
)

// Genres lists every filterable genre, starting with [GenreAll].
var Genres = []Genre{GenreAll, GenreClassic, GenreContemporary, GenreRock, GenreComedy, GenreDrama, GenreRevival}

// MixedRange is the song vocal range that matches any singer.
const MixedRange = "Mixed"

// VocalRanges are the ranges a user may pick in settings.
var VocalRanges = []string{
	"Soprano",
	"Mezzo-Soprano",
	"Mezzo-Soprano/Belt",
	"Alto",
	"Alto/Mezzo",
	"Tenor",
	"Baritone",
	"Baritone/Tenor",
	"Bass",
	"Bass/Baritone",
}

// Show is a musical in the bundled catalog.
type Show struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Composer   string      `json:"composer"`
	Lyricist   string      `json:"lyricist"`
	Year       int         `json:"year"`
	Genre      Genre       `json:"genre"`
	Synopsis   string      `json:"synopsis"`
	ImageURL   string      `json:"imageUrl"`
	Songs      []Song      `json:"songs"`
	Characters []Character `json:"characters"`
}

// Song is a number from a [Show].
//
// VocalRange is free text such as "Tenor", "Mezzo-Soprano/Belt" or [MixedRange].
type Song struct {
	ID         string   `json:"id"`
	ShowID     string   `json:"showId"`
	Title      string   `json:"title"`
	Character  string   `json:"character"`
	VocalRange string   `json:"vocalRange"`
	Type       SongType `json:"type"`
	Act        int      `json:"act"`
	Lyrics     string   `json:"lyrics,omitempty"`
}

// Character is a role in a [Show].
type Character struct {
	Name        string `json:"name"`
	VocalRange  string `json:"vocalRange"`
	Description string `json:"description"`
}

// SongRef pairs a song with the show it belongs to.
type SongRef struct {
	Song Song
	Show Show
}
