package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/urfave/cli/v3"
)

func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favourite shows",
		Commands: []*cli.Command{
			{
				Name:      "toggle",
				Usage:     "Add or remove a favourite show",
				ArgsUsage: "<show-id>",
				Action:    r.FavoritesToggle,
			},
			{
				Name:   "list",
				Usage:  "List favourite shows",
				Action: r.FavoritesList,
			},
		},
	}
}

func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "View or change your profile settings",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print current settings",
				Action: r.SettingsShow,
			},
			{
				Name:  "set",
				Usage: "Change one or more settings",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "range", Usage: "Vocal range (empty to clear)"},
					&cli.IntFlag{Name: "goal", Usage: "Practice sessions per week (1-50)"},
					&cli.BoolFlag{Name: "reminder", Usage: "Enable the daily practice reminder"},
					&cli.StringFlag{Name: "reminder-time", Usage: "Reminder time as HH:MM"},
				},
				Action: r.SettingsSet,
			},
		},
	}
}

func calendarCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Show auditions and practice sessions for a month",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "month",
				Aliases: []string{"m"},
				Usage:   "Month as YYYY-MM (defaults to the current month)",
			},
		},
		Action: r.Calendar,
	}
}

// FavoritesToggle flips a show's favourite flag.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	showID := cmd.Args().First()
	if showID == "" {
		return fmt.Errorf("%w: show id", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	favorite, err := tracker.ToggleFavorite(ctx, showID)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(map[string]any{"showId": showID, "favorite": favorite}, false)
	}
	if favorite {
		return r.writePlain("♥ Added %s to favourites\n", showID)
	}
	return r.writePlain("Removed %s from favourites\n", showID)
}

// FavoritesList prints the favourite shows.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	var shows []models.Show
	for _, id := range tracker.Favorites() {
		if show, ok := tracker.Catalog().ShowByID(id); ok {
			shows = append(shows, *show)
		}
	}

	if r.jsonOut {
		return r.writeJSON(shows, true)
	}
	if len(shows) == 0 {
		return r.writePlain("No favourite shows yet\n")
	}

	rows := make([][]string, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, []string{show.ID, show.Title, show.Composer, strconv.Itoa(show.Year)})
	}
	return r.writeTable([]string{"ID", "Title", "Composer", "Year"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight})
}

// SettingsShow prints the settings record.
func (r *Runner) SettingsShow(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	s := tracker.Settings()
	if r.jsonOut {
		return r.writeJSON(s, true)
	}

	vocalRange := s.VocalRange
	if vocalRange == "" {
		vocalRange = "not set"
	}
	reminder := "off"
	if s.ReminderEnabled {
		reminder = "daily at " + s.ReminderTime
	}
	r.writePlain("Vocal range:   %s\n", vocalRange)
	r.writePlain("Weekly goal:   %d sessions\n", s.PracticeGoalPerWeek)
	return r.writePlain("Reminder:      %s\n", reminder)
}

// SettingsSet applies the given flags as a partial update.
func (r *Runner) SettingsSet(ctx context.Context, cmd *cli.Command) error {
	var patch models.SettingsPatch

	if cmd.IsSet("range") {
		vocalRange := strings.TrimSpace(cmd.String("range"))
		if vocalRange != "" {
			var err error
			if vocalRange, err = parseVocalRange(vocalRange); err != nil {
				return err
			}
		}
		patch.VocalRange = &vocalRange
	}
	if cmd.IsSet("goal") {
		goal := int(cmd.Int("goal"))
		patch.PracticeGoalPerWeek = &goal
	}
	if cmd.IsSet("reminder") {
		enabled := cmd.Bool("reminder")
		patch.ReminderEnabled = &enabled
	}
	if cmd.IsSet("reminder-time") {
		at := strings.TrimSpace(cmd.String("reminder-time"))
		patch.ReminderTime = &at
	}
	if patch.Empty() {
		return fmt.Errorf("%w: nothing to change (see --help)", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	s, err := tracker.UpdateSettings(ctx, patch)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(s, true)
	}
	return r.writePlain("✓ Settings saved\n")
}

// parseMonth reads YYYY-MM. Empty input means the month containing now.
func parseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q must be YYYY-MM", shared.ErrInvalidFlag, s)
	}
	return t.Year(), t.Month(), nil
}

// Calendar prints the month grid and its events.
func (r *Runner) Calendar(ctx context.Context, cmd *cli.Command) error {
	now := r.clock.Now()
	year, month, err := parseMonth(cmd.String("month"), now)
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	cal := tracker.CalendarEvents(year, month)
	if r.jsonOut {
		return r.writeJSON(cal, true)
	}
	return r.writePlain("%s", formatter.CalendarText(cal, now))
}
