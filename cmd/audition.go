package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/desertthunder/encore/internal/tasks"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v3"
)

// dateLayouts are accepted by --date, tried in order.
var dateLayouts = []string{time.DateOnly + " 15:04", time.DateOnly + "T15:04", time.DateOnly}

func auditionCommand(r *Runner) *cli.Command {
	idArg := "<audition-id>"
	return &cli.Command{
		Name:  "audition",
		Usage: "Track auditions, prep checklists and journals",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Schedule an audition",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "show", Usage: "Show title", Required: true},
					&cli.StringFlag{Name: "role", Usage: "Role you are auditioning for", Required: true},
					&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD or \"YYYY-MM-DD HH:MM\" (defaults to now)"},
					&cli.StringFlag{Name: "location", Usage: "Venue or studio"},
					&cli.StringFlag{Name: "notes", Usage: "Anything to remember"},
				},
				Action: r.AuditionAdd,
			},
			{
				Name:  "list",
				Usage: "List auditions, soonest first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "status",
						Usage: "all, upcoming, completed or cancelled",
						Value: string(tasks.FilterAll),
					},
				},
				Action: r.AuditionList,
			},
			{
				Name:      "show",
				Usage:     "Show an audition with its checklist and journal",
				ArgsUsage: idArg,
				Action:    r.AuditionShow,
			},
			{
				Name:      "check",
				Usage:     "Toggle a checklist item by id or position",
				ArgsUsage: idArg + " <item>",
				Action:    r.AuditionCheck,
			},
			{
				Name:      "status",
				Usage:     "Toggle between upcoming and completed",
				ArgsUsage: idArg,
				Action:    r.AuditionStatus,
			},
			{
				Name:      "cancel",
				Usage:     "Mark an audition cancelled",
				ArgsUsage: idArg,
				Action:    r.AuditionCancel,
			},
			{
				Name:      "journal",
				Usage:     "Write or replace the post-audition journal",
				ArgsUsage: idArg,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "how", Usage: "great, good, okay or rough", Value: string(models.WentGood)},
					&cli.StringFlag{Name: "callback", Usage: "pending, callback, no-callback or booked", Value: string(models.CallbackPending)},
					&cli.StringFlag{Name: "notes", Usage: "How it went"},
					&cli.StringFlag{Name: "improvements", Usage: "What to work on next time"},
				},
				Action: r.AuditionJournal,
			},
			{
				Name:      "remove",
				Usage:     "Delete an audition",
				ArgsUsage: idArg,
				Action:    r.AuditionRemove,
			},
		},
	}
}

// parseDate reads --date in the clock's location. Empty input yields the zero time.
func (r *Runner) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	loc := r.clock.Now().Location()
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"", shared.ErrInvalidFlag, s)
}

func parseAuditionFilter(s string) (tasks.AuditionFilter, error) {
	switch f := tasks.AuditionFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", tasks.FilterAll:
		return tasks.FilterAll, nil
	default:
		if !models.AuditionStatus(f).Valid() {
			return "", fmt.Errorf("%w: unknown audition status %q", shared.ErrInvalidFlag, s)
		}
		return f, nil
	}
}

func parseHowItWent(s string) (models.HowItWent, error) {
	switch h := models.HowItWent(strings.ToLower(s)); h {
	case models.WentGreat, models.WentGood, models.WentOkay, models.WentRough:
		return h, nil
	}
	return "", fmt.Errorf("%w: --how must be great, good, okay or rough", shared.ErrInvalidFlag)
}

func parseCallback(s string) (models.CallbackStatus, error) {
	switch c := models.CallbackStatus(strings.ToLower(s)); c {
	case models.CallbackPending, models.CallbackYes, models.CallbackNo, models.CallbackBooked:
		return c, nil
	}
	return "", fmt.Errorf("%w: --callback must be pending, callback, no-callback or booked", shared.ErrInvalidFlag)
}

func (r *Runner) auditionID(tracker *tasks.Tracker, ref string) (string, error) {
	return resolveID(tracker.Auditions(tasks.FilterAll), ref, shared.ErrAuditionNotFound)
}

func (r *Runner) auditionStatus(s models.AuditionStatus) string {
	switch s {
	case models.AuditionCompleted:
		return r.paint(string(s), text.FgGreen)
	case models.AuditionCancelled:
		return r.paint(string(s), text.FgRed)
	default:
		return r.paint(string(s), text.FgYellow)
	}
}

// AuditionAdd schedules an audition with the default checklist.
func (r *Runner) AuditionAdd(ctx context.Context, cmd *cli.Command) error {
	date, err := r.parseDate(cmd.String("date"))
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	audition, err := tracker.AddAudition(ctx, tasks.AuditionInput{
		ShowTitle: cmd.String("show"),
		Role:      cmd.String("role"),
		Date:      date,
		Location:  cmd.String("location"),
		Notes:     cmd.String("notes"),
	})
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(audition, true)
	}
	return r.writePlain("✓ Added audition for %s in %s (%s), %s\n",
		audition.Role, audition.ShowTitle, shortID(audition.ID), formatter.DaysUntil(audition.Date, r.clock.Now()))
}

// AuditionList prints auditions matching --status.
func (r *Runner) AuditionList(ctx context.Context, cmd *cli.Command) error {
	filter, err := parseAuditionFilter(cmd.String("status"))
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	auditions := tracker.Auditions(filter)
	if r.jsonOut {
		return r.writeJSON(auditions, true)
	}

	if len(auditions) == 0 {
		return r.writePlain("No auditions\n")
	}

	now := r.clock.Now()
	rows := make([][]string, 0, len(auditions))
	for _, a := range auditions {
		done, total := a.ChecklistProgress()
		when := a.Date.In(now.Location()).Format("Mon Jan 2 2006")
		if a.Status == models.AuditionUpcoming {
			when += " (" + formatter.DaysUntil(a.Date, now) + ")"
		}
		callback := ""
		if a.Journal != nil {
			callback = string(a.Journal.CallbackStatus)
		}
		rows = append(rows, []string{
			shortID(a.ID), a.ShowTitle, a.Role, when, a.Location,
			r.auditionStatus(a.Status), fmt.Sprintf("%d/%d", done, total), callback,
		})
	}

	return r.writeTable(
		[]string{"ID", "Show", "Role", "When", "Where", "Status", "Prep", "Callback"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// AuditionShow prints one audition in full.
func (r *Runner) AuditionShow(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.auditionID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}
	a, err := tracker.Audition(id)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(a, true)
	}

	now := r.clock.Now()
	r.writePlainHeader(fmt.Sprintf("%s: %s", a.ShowTitle, a.Role))
	r.writePlain("When:    %s (%s)\n", a.Date.In(now.Location()).Format("Mon Jan 2 2006 15:04"), formatter.DaysUntil(a.Date, now))
	if a.Location != "" {
		r.writePlain("Where:   %s\n", a.Location)
	}
	r.writePlain("Status:  %s\n", r.auditionStatus(a.Status))
	if a.Notes != "" {
		r.writePlain("Notes:   %s\n", a.Notes)
	}

	done, total := a.ChecklistProgress()
	r.writePlainln("Checklist (%d/%d)", done, total)
	for i, item := range a.Checklist {
		box := "[ ]"
		if item.Completed {
			box = r.paint("[x]", text.FgGreen)
		}
		r.writePlain("  %d. %s %s\n", i+1, box, item.Label)
	}

	if j := a.Journal; j != nil {
		r.writePlainln("Journal (%s)", j.Date.In(now.Location()).Format(time.DateOnly))
		r.writePlain("  How it went: %s\n  Callback:    %s\n", j.HowItWent, j.CallbackStatus)
		if j.Notes != "" {
			r.writePlain("  Notes:       %s\n", j.Notes)
		}
		if j.Improvements != "" {
			r.writePlain("  Next time:   %s\n", j.Improvements)
		}
	}
	return nil
}

// AuditionCheck toggles a checklist item.
func (r *Runner) AuditionCheck(ctx context.Context, cmd *cli.Command) error {
	ref := cmd.Args().Get(1)
	if ref == "" {
		return fmt.Errorf("%w: checklist item", shared.ErrMissingArgument)
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.auditionID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	a, err := tracker.ToggleChecklistItem(ctx, id, ref)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(a, true)
	}
	done, total := a.ChecklistProgress()
	return r.writePlain("✓ Checklist %d/%d\n", done, total)
}

// AuditionStatus toggles between upcoming and completed.
func (r *Runner) AuditionStatus(ctx context.Context, cmd *cli.Command) error {
	return r.updateAudition(ctx, cmd, func(t *tasks.Tracker, id string) (models.Audition, error) {
		return t.ToggleAuditionStatus(ctx, id)
	})
}

// AuditionCancel marks an audition cancelled.
func (r *Runner) AuditionCancel(ctx context.Context, cmd *cli.Command) error {
	return r.updateAudition(ctx, cmd, func(t *tasks.Tracker, id string) (models.Audition, error) {
		return t.CancelAudition(ctx, id)
	})
}

func (r *Runner) updateAudition(ctx context.Context, cmd *cli.Command, fn func(*tasks.Tracker, string) (models.Audition, error)) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.auditionID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	a, err := fn(tracker, id)
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(a, true)
	}
	return r.writePlain("✓ %s: %s\n", a.ShowTitle, r.auditionStatus(a.Status))
}

// AuditionJournal saves the journal entry.
func (r *Runner) AuditionJournal(ctx context.Context, cmd *cli.Command) error {
	how, err := parseHowItWent(cmd.String("how"))
	if err != nil {
		return err
	}
	callback, err := parseCallback(cmd.String("callback"))
	if err != nil {
		return err
	}

	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.auditionID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	a, err := tracker.SaveJournal(ctx, id, tasks.JournalInput{
		HowItWent:      how,
		CallbackStatus: callback,
		Notes:          cmd.String("notes"),
		Improvements:   cmd.String("improvements"),
	})
	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(a, true)
	}
	if a.Booked() {
		return r.writePlain("🎉 Booked %s in %s!\n", a.Role, a.ShowTitle)
	}
	return r.writePlain("✓ Journal saved\n")
}

// AuditionRemove deletes an audition.
func (r *Runner) AuditionRemove(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	id, err := r.auditionID(tracker, cmd.Args().First())
	if err != nil {
		return err
	}

	if err := tracker.RemoveAudition(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Removed audition\n")
}
