package main

import (
	"context"

	"github.com/desertthunder/encore/internal/tasks"
	"github.com/urfave/cli/v3"
)

func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Write every collection and repertoire exports to a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory (default: encore_backup_{timestamp})",
			},
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Repertoire export formats: csv, markdown, txt, json (default: csv, markdown)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent writers (max 5)",
				Value:   3,
			},
		},
		Action: r.Backup,
	}
}

// Backup writes a full backup, printing progress as files are written.
func (r *Runner) Backup(ctx context.Context, cmd *cli.Command) error {
	tracker, err := r.openTracker(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("starting backup", "dir", cmd.String("dir"))

	progressCh := make(chan tasks.ProgressUpdate, 20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			if r.jsonOut {
				continue
			}
			switch update.Phase {
			case tasks.BackupStart:
				r.writePlain("📦 %s\n", update.Message)
			case tasks.WriteCollection, tasks.ExportRepertoire:
				r.writePlain("   [%d/%d] %s\n", update.Step, update.Total, update.Message)
			case tasks.BackupFailed:
				r.writePlain("   [%d/%d] ✗ %s\n", update.Step, update.Total, update.Message)
			case tasks.WriteManifest:
				r.writePlain("📝 %s\n", update.Message)
			}
		}
	}()

	result, err := tracker.Backup(ctx, progressCh, tasks.BackupOpts{
		Dir:        cmd.String("dir"),
		Formats:    cmd.StringSlice("format"),
		NumWorkers: int(cmd.Int("workers")),
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if r.jsonOut {
		return r.writeJSON(result.BackupManifest, true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Backup Complete!")
	r.writePlain("Directory: %s\n", result.Directory)
	r.writePlain("Files: %d written, %d failed\n", result.Successful, result.Failed)
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	if result.Failed > 0 {
		r.writePlain("\nFailed files:\n")
		for _, f := range result.Files {
			if f.Error != "" {
				r.writePlain("  - %s: %s\n", f.Name, f.Error)
			}
		}
	}
	return nil
}
