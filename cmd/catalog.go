package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/encore/internal/catalog"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v3"
)

func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Browse the bundled musical catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List shows, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Genre filter (Classic, Contemporary, Rock, Comedy, Drama, Revival)",
					},
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Title or composer substring",
					},
					&cli.BoolFlag{
						Name:  "match-range",
						Usage: "Only shows with a song in your vocal range",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:      "show",
				Usage:     "Show a musical with its songs and characters",
				ArgsUsage: "<show-id>",
				Action:    r.CatalogShow,
			},
			{
				Name:      "song",
				Usage:     "Show a single song",
				ArgsUsage: "<song-id>",
				Action:    r.CatalogSong,
			},
		},
	}
}

func parseGenre(s string) (models.Genre, error) {
	if s == "" {
		return models.GenreAll, nil
	}
	for _, g := range models.Genres {
		if strings.EqualFold(string(g), strings.TrimSpace(s)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: unknown genre %q", shared.ErrInvalidFlag, s)
}

// CatalogList lists shows matching --genre and --search, marking favorites.
// With --match-range only shows singable in the configured vocal range are kept.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	genre, err := parseGenre(cmd.String("genre"))
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	vocalRange := tracker.Settings().VocalRange
	shows := tracker.Catalog().Search(cmd.String("search"), genre)
	if cmd.Bool("match-range") {
		if vocalRange == "" {
			return fmt.Errorf("%w: --match-range needs a vocal range (settings set --range)", shared.ErrMissingArgument)
		}
		matched := shows[:0:0]
		for _, show := range shows {
			if catalog.MatchesVocalRange(show, vocalRange) {
				matched = append(matched, show)
			}
		}
		shows = matched
	}

	if r.jsonOut {
		return r.writeJSON(shows, true)
	}

	if len(shows) == 0 {
		return r.writePlain("No shows found\n")
	}

	rows := make([][]string, 0, len(shows))
	for _, show := range shows {
		fav := ""
		if tracker.IsFavorite(show.ID) {
			fav = r.paint("♥", text.FgRed)
		}
		matches := "-"
		if vocalRange != "" {
			matches = strconv.Itoa(catalog.RangeMatchCount(show, vocalRange))
		}
		rows = append(rows, []string{
			show.ID, show.Title, show.Composer, strconv.Itoa(show.Year),
			string(show.Genre), strconv.Itoa(len(show.Songs)), matches, fav,
		})
	}

	return r.writeTable(
		[]string{"ID", "Title", "Composer", "Year", "Genre", "Songs", "In Range", "♥"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	)
}

// CatalogShow prints a show's details with songs grouped by act.
func (r *Runner) CatalogShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("%w: show id", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	show, ok := tracker.Catalog().ShowByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrShowNotFound, id)
	}

	if r.jsonOut {
		return r.writeJSON(show, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%d)", show.Title, show.Year))
	r.writePlain("Music: %s\nLyrics: %s\nGenre: %s\n", show.Composer, show.Lyricist, show.Genre)
	if tracker.IsFavorite(show.ID) {
		r.writePlain("♥ Favorite\n")
	}
	r.writePlainln("%s", show.Synopsis)

	vocalRange := tracker.Settings().VocalRange
	for _, act := range catalog.SongsByAct(*show) {
		r.writePlainln("Act %d", act.Number)
		for _, song := range act.Songs {
			marker := " "
			if catalog.SongInRange(song, vocalRange) {
				marker = r.paint("✓", text.FgGreen)
			}
			added := ""
			if tracker.IsInRepertoire(song.ID) {
				added = " [in repertoire]"
			}
			r.writePlain("%s %-8s %s (%s, %s, %s)%s\n", marker, song.ID, song.Title, song.Character, song.VocalRange, song.Type, added)
		}
	}

	r.writePlainln("Characters")
	for _, c := range show.Characters {
		r.writePlain("  %s (%s): %s\n", c.Name, c.VocalRange, c.Description)
	}
	return nil
}

// CatalogSong prints a single song with its show.
func (r *Runner) CatalogSong(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	ref, ok := tracker.Catalog().SongByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}

	if r.jsonOut {
		return r.writeJSON(ref.Song, true)
	}

	r.writePlain("%s\n", ref.Song.Title)
	r.writePlain("  Show:       %s\n", ref.Show.Title)
	r.writePlain("  Character:  %s\n", ref.Song.Character)
	r.writePlain("  Range:      %s\n", ref.Song.VocalRange)
	r.writePlain("  Type:       %s\n", ref.Song.Type)
	r.writePlain("  Act:        %d\n", ref.Song.Act)
	if tracker.IsInRepertoire(ref.Song.ID) {
		r.writePlain("  In your repertoire\n")
	}
	return nil
}
