package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/repositories"
)

const (
	defaultBackupWorkers = 3
	maxBackupWorkers     = 5
)

// BackupOpts configures [Tracker.Backup].
type BackupOpts struct {
	Dir        string   // Output directory (default: encore_backup_{epoch})
	Formats    []string // Repertoire export formats (default: csv, markdown)
	NumWorkers int      // Concurrent writers (default: 3, max: 5)
}

// BackupResult is the manifest of a finished backup plus where it was written.
type BackupResult struct {
	formatter.BackupManifest
	ManifestPath string
}

type backupJob struct {
	name    string
	path    string
	phase   Phase
	records int
	render  func() ([]byte, error)
}

type backupResult struct {
	job backupJob
	err error
}

// Backup writes every tracked collection as JSON plus repertoire exports in
// opts.Formats to opts.Dir, then writes manifest.json describing the files.
//
// Files are written by a pool of workers. Individual failures are recorded in
// the manifest rather than aborting the backup. progress may be nil.
func (t *Tracker) Backup(ctx context.Context, progress chan<- ProgressUpdate, opts BackupOpts) (*BackupResult, error) {
	now := t.clock.Now()
	if opts.Dir == "" {
		opts.Dir = fmt.Sprintf("encore_backup_%d", now.Unix())
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{formatter.FormatCSV, formatter.FormatMarkdown}
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultBackupWorkers
	}
	if opts.NumWorkers > maxBackupWorkers {
		opts.NumWorkers = maxBackupWorkers
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	queue := t.backupJobs(opts)
	result := &BackupResult{
		BackupManifest: formatter.BackupManifest{
			CreatedAt: now,
			Directory: opts.Dir,
			Formats:   opts.Formats,
			Files:     make([]formatter.BackupFile, 0, len(queue)),
		},
	}

	jobs := make(chan backupJob, len(queue))
	results := make(chan backupResult, len(queue))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go backupWorker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for _, job := range queue {
			select {
			case <-ctx.Done():
				return
			case jobs <- job:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	t.sendProgress(progress, backupStartUpdate(len(queue), opts.Dir))

	completed := 0
	for res := range results {
		completed++
		file := formatter.BackupFile{Name: res.job.name, Path: res.job.path, Records: res.job.records}
		if res.err != nil {
			file.Error = res.err.Error()
			result.Failed++
			t.logger.Warn("backup file failed", "file", res.job.name, "error", res.err)
			t.sendProgress(progress, fileFailedUpdate(completed, len(queue), res))
		} else {
			result.Successful++
			t.sendProgress(progress, fileWrittenUpdate(completed, len(queue), res))
		}
		result.Files = append(result.Files, file)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("backup cancelled: %w", err)
	}

	manifestPath := filepath.Join(opts.Dir, "manifest.json")
	if err := formatter.WriteBackupManifest(&result.BackupManifest, manifestPath); err != nil {
		return result, fmt.Errorf("backup completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	t.sendProgress(progress, manifestUpdate(len(queue), manifestPath))

	t.logger.Info("backup complete", "dir", opts.Dir, "files", result.Successful, "failed", result.Failed)
	return result, nil
}

// backupJobs snapshots the tracked collections into render jobs.
func (t *Tracker) backupJobs(opts BackupOpts) []backupJob {
	repertoire, auditions, sessions, favorites, settings := t.repertoire, t.auditions, t.sessions, t.favorites, t.settings

	collection := func(key string, records int, v any) backupJob {
		return backupJob{
			name:    key,
			path:    filepath.Join(opts.Dir, key+".json"),
			phase:   WriteCollection,
			records: records,
			render:  func() ([]byte, error) { return formatter.MarshalJSON(v, true) },
		}
	}

	queue := []backupJob{
		collection(repositories.KeyRepertoire, len(repertoire), repertoire),
		collection(repositories.KeyAuditions, len(auditions), auditions),
		collection(repositories.KeyPractice, len(sessions), sessions),
		collection(repositories.KeyFavorites, len(favorites), favorites),
		collection(repositories.KeySettings, 1, settings),
	}

	lookup := t.catalog.SongByID
	for _, format := range opts.Formats {
		queue = append(queue, backupJob{
			name:    "repertoire." + format,
			path:    filepath.Join(opts.Dir, "repertoire_export."+formatter.Extension(format)),
			phase:   ExportRepertoire,
			records: len(repertoire),
			render:  func() ([]byte, error) { return formatter.ExportRepertoire(repertoire, lookup, format) },
		})
	}
	return queue
}

// backupWorker renders and writes jobs until the channel closes.
func backupWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan backupJob, results chan<- backupResult) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		data, err := job.render()
		if err == nil {
			err = os.WriteFile(job.path, data, 0644)
		}
		results <- backupResult{job: job, err: err}
	}
}

// sendProgress delivers u without blocking when nobody is listening.
func (t *Tracker) sendProgress(progress chan<- ProgressUpdate, u ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- u:
	default:
		t.logger.Debug("progress update dropped", "phase", u.Phase)
	}
}
