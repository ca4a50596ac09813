package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/desertthunder/encore/internal/ui"
	"github.com/urfave/cli/v3"
)

func finderCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "finder",
		Usage: "Find audition songs for your voice",
		Commands: []*cli.Command{
			{
				Name:  "find",
				Usage: "Rank catalog songs for a vocal range, style and audition type",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "range",
						Aliases: []string{"r"},
						Usage:   "Vocal range (defaults to the one in settings)",
					},
					&cli.StringFlag{
						Name:    "style",
						Aliases: []string{"s"},
						Usage:   "any, uptempo, ballad, comedic, dramatic or legit",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "any, general, contemporary, classic, belt or legit",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of matches (defaults to finder.limit)",
					},
				},
				Action: r.FinderFind,
			},
			{
				Name:  "tui",
				Usage: "Pick range, style and audition type interactively",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "range",
						Aliases: []string{"r"},
						Usage:   "Preselected vocal range",
					},
				},
				Action: r.FinderTUI,
			},
		},
	}
}

// parseVocalRange matches s against the known vocal ranges, ignoring case.
func parseVocalRange(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, v := range models.VocalRanges {
		if strings.EqualFold(v, s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown vocal range %q (choose one of %s)",
		shared.ErrInvalidFlag, s, strings.Join(models.VocalRanges, ", "))
}

// FinderFind prints the top matches for the given query.
func (r *Runner) FinderFind(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	raw := cmd.String("range")
	if raw == "" {
		raw = tracker.Settings().VocalRange
	}
	if raw == "" {
		return fmt.Errorf("%w: --range (or set one with 'encore settings set --range')", shared.ErrMissingArgument)
	}
	vocalRange, err := parseVocalRange(raw)
	if err != nil {
		return err
	}

	style, err := finder.ParseStyle(cmd.String("style"))
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidFlag, err)
	}
	auditionType, err := finder.ParseAuditionType(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidFlag, err)
	}

	limit := r.config.Finder.Limit
	if cmd.IsSet("limit") {
		limit = int(cmd.Int("limit"))
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", shared.ErrInvalidFlag)
	}

	query := finder.Query{VocalRange: vocalRange, Style: style, AuditionType: auditionType}
	matches := finder.Top(tracker.FindSongs(query), limit)
	r.logger.Debug("finder search", "range", vocalRange, "style", style, "type", auditionType, "matches", len(matches))

	if r.jsonOut {
		return r.writeJSON(matches, true)
	}

	if len(matches) == 0 {
		return r.writePlain("No matches. Try a different style or audition type.\n")
	}

	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		added := ""
		if tracker.IsInRepertoire(m.Song.ID) {
			added = "✓"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Song.ID,
			m.Song.Title,
			m.Show.Title,
			m.Song.Character,
			m.Song.VocalRange,
			strconv.FormatFloat(m.Score, 'f', 0, 64),
			strings.Join(m.TopReasons(3), " • "),
			added,
		})
	}

	return r.writeTable(
		[]string{"#", "ID", "Song", "Show", "Character", "Range", "Score", "Why", "✓"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
}

// FinderTUI launches the interactive Song Finder.
func (r *Runner) FinderTUI(ctx context.Context, cmd *cli.Command) error {
	vocalRange := cmd.String("range")
	if vocalRange != "" {
		var err error
		if vocalRange, err = parseVocalRange(vocalRange); err != nil {
			return err
		}
	}

	if err := r.useFileLogger(); err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	if vocalRange == "" {
		vocalRange = tracker.Settings().VocalRange
	}

	model := ui.NewFinderModel(ctx, tracker, vocalRange, r.config.Finder.Limit)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if model.Added() > 0 {
		return r.writePlain("✓ Added %d song(s) to your repertoire\n", model.Added())
	}
	return nil
}

// useFileLogger redirects logs to the configured file so they do not interfere with TUI rendering.
func (r *Runner) useFileLogger() error {
	path := r.config.Log.File
	if path == "" {
		path = "./tmp/encore-tui.log"
	}

	fileLogger, err := shared.NewFileLogger(path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	level, _ := shared.ParseLogLevel(r.config.Log.Level)
	shared.SetLogLevel(fileLogger, level)
	r.SetLogger(fileLogger)
	r.tracker = nil
	return nil
}
