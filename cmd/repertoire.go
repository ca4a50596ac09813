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
	"github.com/desertthunder/encore/internal/tasks"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v3"
)

func repertoireCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "repertoire",
		Aliases: []string{"rep"},
		Usage:   "Manage the songs you are working on",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a catalog song",
				ArgsUsage: "<song-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Add the song even if it is already in your repertoire",
					},
				},
				Action: r.RepertoireAdd,
			},
			{
				Name:  "list",
				Usage: "List repertoire songs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "status",
						Usage: "learning, polishing or ready",
					},
				},
				Action: r.RepertoireList,
			},
			{
				Name:      "remove",
				Usage:     "Remove a song from your repertoire",
				ArgsUsage: "<item-id>",
				Action:    r.RepertoireRemove,
			},
			{
				Name:      "status",
				Usage:     "Advance a song to its next status, or set it directly",
				ArgsUsage: "<item-id> [learning|polishing|ready]",
				Action:    r.RepertoireStatus,
			},
			{
				Name:      "tag",
				Usage:     "Toggle a tag on a song",
				ArgsUsage: "<item-id> <tag>",
				Action:    r.RepertoireTag,
			},
			{
				Name:      "notes",
				Usage:     "Edit a song's notes and lyrics",
				ArgsUsage: "<item-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "notes", Usage: "Replace the notes"},
					&cli.StringFlag{Name: "lyrics", Usage: "Replace the lyrics"},
				},
				Action: r.RepertoireNotes,
			},
			{
				Name:  "export",
				Usage: "Export your repertoire to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "csv, markdown, txt or json",
						Value:   formatter.FormatMarkdown,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (defaults to repertoire.<ext>)",
					},
				},
				Action: r.RepertoireExport,
			},
			{
				Name:   "share",
				Usage:  "Print a shareable summary of your repertoire",
				Action: r.RepertoireShare,
			},
		},
	}
}

// parseStatus accepts a status name or the short alias "ready".
func parseStatus(s string) (models.RepertoireStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "ready", string(models.StatusPerformanceReady):
		return models.StatusPerformanceReady, nil
	case string(models.StatusLearning):
		return models.StatusLearning, nil
	case string(models.StatusPolishing):
		return models.StatusPolishing, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", shared.ErrInvalidArgument, s)
	}
}

func (r *Runner) repertoireItemID(tracker *tasks.Tracker, ref string) (string, error) {
	return resolveID(tracker.Repertoire(), ref, shared.ErrRepertoireItemNotFound)
}

func (r *Runner) statusLabel(s models.RepertoireStatus) string {
	label := formatter.StatusLabel(s)
	switch s {
	case models.StatusPerformanceReady:
		return r.paint(label, text.FgGreen)
	case models.StatusPolishing:
		return r.paint(label, text.FgYellow)
	default:
		return r.paint(label, text.FgCyan)
	}
}

// RepertoireAdd starts tracking a catalog song.
func (r *Runner) RepertoireAdd(ctx context.Context, cmd *cli.Command) error {
	songID := cmd.Args().First()
	if songID == "" {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	if tracker.IsInRepertoire(songID) && !cmd.Bool("force") {
		return fmt.Errorf("%w: %s is already in your repertoire (use --force to add it again)", shared.ErrInvalidArgument, songID)
	}

	item, err := tracker.AddToRepertoire(ctx, songID)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(item, true)
	}

	title, _ := tracker.SongTitle(item.ID)
	return r.writePlain("✓ Added %s (%s)\n", title, shortID(item.ID))
}

// RepertoireList prints repertoire songs, optionally filtered by --status.
func (r *Runner) RepertoireList(ctx context.Context, cmd *cli.Command) error {
	status, err := parseStatus(cmd.String("status"))
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	entries := tracker.RepertoireEntries(status)
	if r.jsonOut {
		items := make([]models.RepertoireItem, len(entries))
		for i, e := range entries {
			items[i] = e.Item
		}
		return r.writeJSON(items, true)
	}

	if len(entries) == 0 {
		return r.writePlain("No songs in your repertoire yet. Try 'encore finder find'.\n")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		title, show := e.Item.SongID, ""
		if e.Found {
			title, show = e.Song.Title, e.Show.Title
		}
		tags := make([]string, len(e.Item.Tags))
		for i, tag := range e.Item.Tags {
			tags[i] = string(tag)
		}
		last := "never"
		if e.Item.LastPracticed != nil {
			last = e.Item.LastPracticed.In(r.clock.Now().Location()).Format(time.DateOnly)
		}
		rows = append(rows, []string{
			shortID(e.Item.ID), title, show, r.statusLabel(e.Item.Status),
			strings.Join(tags, ", "), strconv.Itoa(e.Item.PracticeCount), last,
		})
	}

	return r.writeTable(
		[]string{"ID", "Song", "Show", "Status", "Tags", "Practiced", "Last"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// RepertoireRemove stops tracking a song.
func (r *Runner) RepertoireRemove(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.repertoireItemID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}
	title, _ := tracker.SongTitle(id)

	if err := tracker.RemoveFromRepertoire(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Removed %s\n", title)
}

// RepertoireStatus cycles an item's status, or cycles until it reaches the requested one.
func (r *Runner) RepertoireStatus(ctx context.Context, cmd *cli.Command) error {
	target, err := parseStatus(cmd.Args().Get(1))
	if err != nil {
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

	item, err := tracker.RepertoireItem(id)
	if err != nil {
		return err
	}
	if target == "" || item.Status != target {
		for range 3 {
			if item, err = tracker.CycleStatus(ctx, id); err != nil {
				return err
			}
			if target == "" || item.Status == target {
				break
			}
		}
	}

	if r.jsonOut {
		return r.writeJSON(item, true)
	}
	return r.writePlain("✓ Status: %s\n", r.statusLabel(item.Status))
}

// RepertoireTag toggles a tag.
func (r *Runner) RepertoireTag(ctx context.Context, cmd *cli.Command) error {
	tag := models.SongTag(strings.ToLower(cmd.Args().Get(1)))
	if tag == "" {
		return fmt.Errorf("%w: tag", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.repertoireItemID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	item, err := tracker.ToggleTag(ctx, id, tag)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(item, true)
	}
	if item.HasTag(tag) {
		return r.writePlain("✓ Tagged %s\n", tag)
	}
	return r.writePlain("✓ Removed tag %s\n", tag)
}

// RepertoireNotes replaces notes and/or lyrics. Unset flags keep their current value.
func (r *Runner) RepertoireNotes(ctx context.Context, cmd *cli.Command) error {
	if !cmd.IsSet("notes") && !cmd.IsSet("lyrics") {
		return fmt.Errorf("%w: --notes or --lyrics", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.repertoireItemID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	item, err := tracker.RepertoireItem(id)
	if err != nil {
		return err
	}

	notes, lyrics := item.Notes, item.Lyrics
	if cmd.IsSet("notes") {
		notes = cmd.String("notes")
	}
	if cmd.IsSet("lyrics") {
		lyrics = cmd.String("lyrics")
	}

	if item, err = tracker.UpdateNotes(ctx, id, notes, lyrics); err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(item, true)
	}
	return r.writePlain("✓ Notes saved\n")
}

// RepertoireExport writes the repertoire in --format to --output.
func (r *Runner) RepertoireExport(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	items := tracker.Repertoire()
	path, err := formatter.WriteRepertoireExport(items, tracker.Catalog().SongByID, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("repertoire exported", "format", cmd.String("format"), "path", path, "songs", len(items))
	return r.writePlain("✓ Exported %d song(s) to %s\n", len(items), path)
}

// RepertoireShare prints the plain-text share summary.
func (r *Runner) RepertoireShare(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	return r.writePlain("%s\n", formatter.RepertoireShareText(tracker.Repertoire(), tracker.Catalog().SongByID))
}
