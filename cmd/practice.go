package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/desertthunder/encore/internal/ui"
	"github.com/urfave/cli/v3"
)

func practiceCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "practice",
		Usage: "Log practice sessions and view progress",
		Commands: []*cli.Command{
			{
				Name:      "log",
				Usage:     "Record a finished practice session",
				ArgsUsage: "<item-id>",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:    "duration",
						Aliases: []string{"d"},
						Usage:   "Elapsed time, e.g. 12m30s",
					},
					&cli.IntFlag{
						Name:    "minutes",
						Aliases: []string{"m"},
						Usage:   "Elapsed whole minutes",
					},
					&cli.StringFlag{Name: "notes", Usage: "Session notes"},
				},
				Action: r.PracticeLog,
			},
			{
				Name:      "timer",
				Usage:     "Run an interactive practice timer",
				ArgsUsage: "<item-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "notes", Usage: "Session notes"},
				},
				Action: r.PracticeTimer,
			},
			{
				Name:   "stats",
				Usage:  "Show repertoire, audition and practice statistics",
				Action: r.PracticeStats,
			},
			{
				Name:  "recent",
				Usage: "List the most recent sessions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Number of sessions",
						Value:   5,
					},
				},
				Action: r.PracticeRecent,
			},
		},
	}
}

// PracticeLog records a session from --duration or --minutes.
func (r *Runner) PracticeLog(ctx context.Context, cmd *cli.Command) error {
	var elapsed time.Duration
	switch {
	case cmd.IsSet("duration") && cmd.IsSet("minutes"):
		return fmt.Errorf("%w: cannot specify both --duration and --minutes", shared.ErrInvalidArgument)
	case cmd.IsSet("duration"):
		elapsed = cmd.Duration("duration")
	case cmd.IsSet("minutes"):
		elapsed = time.Duration(cmd.Int("minutes")) * time.Minute
	default:
		return fmt.Errorf("%w: either --duration or --minutes must be provided", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.repertoireItemID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	session, err := tracker.LogPractice(ctx, id, elapsed, cmd.String("notes"))
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(session, true)
	}

	title, _ := tracker.SongTitle(id)
	return r.writePlain("✓ Logged %s of %s\n", formatter.FormatMinutes(session.DurationMinutes), title)
}

// PracticeTimer runs the stopwatch TUI for one repertoire item.
func (r *Runner) PracticeTimer(ctx context.Context, cmd *cli.Command) error {
	if err := r.useFileLogger(); err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.repertoireItemID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}
	title, _ := tracker.SongTitle(id)

	model := ui.NewTimerModel(ctx, tracker, id, title, cmd.String("notes"))
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running timer: %w", err)
	}

	if saved := model.Saved(); saved != nil {
		return r.writePlain("✓ Logged %s of %s\n", formatter.FormatMinutes(saved.DurationMinutes), title)
	}
	return nil
}

// PracticeStats prints the profile statistics.
func (r *Runner) PracticeStats(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	stats := tracker.Stats()
	if r.jsonOut {
		return r.writeJSON(stats, true)
	}
	return r.writePlain("%s", formatter.StatsText(stats))
}

// PracticeRecent lists the newest sessions.
func (r *Runner) PracticeRecent(ctx context.Context, cmd *cli.Command) error {
	limit := int(cmd.Int("limit"))
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", shared.ErrInvalidFlag)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	sessions := tracker.RecentPractice(limit)
	if r.jsonOut {
		return r.writeJSON(sessions, true)
	}

	if len(sessions) == 0 {
		return r.writePlain("No practice sessions yet\n")
	}

	loc := r.clock.Now().Location()
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		title, ok := tracker.SongTitle(s.RepertoireItemID)
		if !ok {
			title = "Practice Session"
		}
		rows = append(rows, []string{
			s.Date.In(loc).Format("Mon Jan 2 15:04"),
			title,
			strconv.Itoa(s.DurationMinutes),
			s.Notes,
		})
	}

	return r.writeTable(
		[]string{"When", "Song", "Minutes", "Notes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	)
}
